package main

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

var invertCmd = &cobra.Command{
	Use:   "invert <input> <output>",
	Short: "Invert the colors of an image",
	Long: `Invert the colors of an image.

Decodes png, jpeg, gif, bmp or tiff input, inverts each pixel's RGB
channels and writes the result in the format implied by the output file
extension. The alpha channel is preserved.`,
	Example: `  tools invert logo.png logo-inverted.png
  tools invert scan.tiff scan.png`,
	Args: cobra.ExactArgs(2),
	RunE: runInvert,
}

func runInvert(cmd *cobra.Command, args []string) error {
	src, err := decodeImage(args[0])
	if err != nil {
		return fmt.Errorf("decoding %s: %w", args[0], err)
	}

	inverted := invertImage(src)

	if err := encodeImage(args[1], inverted); err != nil {
		return fmt.Errorf("encoding %s: %w", args[1], err)
	}

	fmt.Printf("Inverted %s -> %s\n", args[0], args[1])
	return nil
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		return bmp.Decode(f)
	case ".tif", ".tiff":
		return tiff.Decode(f)
	default:
		img, _, err := image.Decode(f)
		return img, err
	}
}

func invertImage(src image.Image) *image.NRGBA {
	bounds := src.Bounds()
	out := image.NewNRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			out.SetNRGBA(x, y, color.NRGBA{
				R: 255 - c.R,
				G: 255 - c.G,
				B: 255 - c.B,
				A: c.A,
			})
		}
	}
	return out
}

func encodeImage(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Encode(f, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
	case ".gif":
		return gif.Encode(f, img, nil)
	case ".bmp":
		return bmp.Encode(f, img)
	case ".tif", ".tiff":
		return tiff.Encode(f, img, nil)
	default:
		return fmt.Errorf("unsupported output format %q", filepath.Ext(path))
	}
}
