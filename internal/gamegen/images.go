package gamegen

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/adwitiya/lexio/internal/llm"
	"github.com/adwitiya/lexio/internal/rounds"
)

// ImagePlaceholderPrefix marks an image the generation backend deferred to
// the image pipeline.
const ImagePlaceholderPrefix = "IMAGE_FOR_WORD_"

// resolveImages replaces every image placeholder in rs with a generated data
// URI, fanning requests out concurrently. All images must succeed; the first
// failure cancels the rest and fails the generation.
func (g *Generator) resolveImages(ctx context.Context, rs []rounds.Round) error {
	var pending []int
	for i := range rs {
		if needsImage(&rs[i]) {
			pending = append(pending, i)
		}
	}
	if len(pending) == 0 {
		return nil
	}
	if g.images == nil {
		return fmt.Errorf("session needs %d images but no image provider is configured", len(pending))
	}

	ctx = llm.WithPurpose(ctx, "image-gen")
	eg, ctx := errgroup.WithContext(ctx)
	for _, i := range pending {
		eg.Go(func() error {
			word := rs[i].Word
			uri, err := g.images.GenerateImage(ctx, imagePrompt(word))
			if err != nil {
				return &ImageError{Word: word, Err: err}
			}
			rs[i].ImageRef = uri
			return nil
		})
	}
	return eg.Wait()
}

// needsImage reports whether the round still carries an unresolved image
// placeholder.
func needsImage(r *rounds.Round) bool {
	return r.Kind == rounds.KindWordImageMatch && strings.HasPrefix(r.ImageRef, ImagePlaceholderPrefix)
}

func imagePrompt(word string) string {
	return fmt.Sprintf("Generate a vibrant, clean, flat illustration of %q, suitable for a modern educational app. The image should be clear, easily recognizable, and visually engaging.", word)
}
