package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/FitoDomik/pdf-to-docx/internal/adapter"
	"github.com/FitoDomik/pdf-to-docx/internal/classify"
	"github.com/FitoDomik/pdf-to-docx/internal/document"
	"github.com/FitoDomik/pdf-to-docx/internal/layout"
	"github.com/FitoDomik/pdf-to-docx/internal/ocr"
	"github.com/FitoDomik/pdf-to-docx/internal/pipeline"
	"github.com/FitoDomik/pdf-to-docx/internal/utils"
	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var imageCmd = &cobra.Command{
	Use:   "image [image file]",
	Short: "Recognize a single page image and print its structure",
	Long: `Image runs text recognition on one page image and prints the
reconstructed page elements without writing a document. Useful for
inspecting what convert would put on the page.

Examples:
  scan2docx image page.png
  scan2docx image page.png --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runImage,
}

// inspectedElement is the JSON shape for one recognized element.
type inspectedElement struct {
	Text       string        `json:"text"`
	Role       classify.Role `json:"role"`
	Confidence float64       `json:"confidence"`
	Bounds     document.Quad `json:"bounds"`
}

// inspectedPage is the JSON shape for the whole page.
type inspectedPage struct {
	Source   string             `json:"source"`
	Shape    string             `json:"shape"`
	Language string             `json:"language"`
	Elements []inspectedElement `json:"elements"`
}

func runImage(cmd *cobra.Command, args []string) error {
	path := args[0]
	if !utils.IsSupportedImage(path) {
		return fmt.Errorf("unsupported image file: %s", path)
	}

	if thumbPath, _ := cmd.Flags().GetString("thumbnail"); thumbPath != "" {
		if err := writeThumbnail(path, thumbPath); err != nil {
			return err
		}
	}

	cfg := GetConfig()
	engine, err := ocr.NewEngine(cfg.ToEngineConfig())
	if err != nil {
		return fmt.Errorf("initialize engine: %w", err)
	}
	defer func() { _ = engine.Close() }()

	raw, err := engine.Recognize(cmd.Context(), path)
	var page document.PageResult
	if err != nil {
		page = adapter.PlaceholderPage(path, err)
	} else {
		page = adapter.Adapt(raw, path)
	}

	pipeline.ClassifyPage(&page)
	ordered := layout.Reconstruct(page)

	var text strings.Builder
	for _, el := range ordered.Elements {
		text.WriteString(el.Text)
		text.WriteByte('\n')
	}

	if cfg.Output.Format == "json" {
		out := inspectedPage{
			Source:   page.SourceRef,
			Shape:    string(page.Shape),
			Language: ocr.DetectLanguage(text.String()),
		}
		for _, el := range ordered.Elements {
			out.Elements = append(out.Elements, inspectedElement{
				Text:       el.Text,
				Role:       el.Role,
				Confidence: el.Confidence,
				Bounds:     el.Bounds,
			})
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Fprint(cmd.OutOrStdout(), text.String())
	return nil
}

// writeThumbnail saves a scaled-down preview of the page image.
func writeThumbnail(imagePath, thumbPath string) error {
	img, err := utils.LoadImage(imagePath)
	if err != nil {
		return err
	}
	thumb := utils.Thumbnail(img, utils.DefaultThumbnailSize)
	if err := imaging.Save(thumb, thumbPath); err != nil {
		return fmt.Errorf("save thumbnail %s: %w", thumbPath, err)
	}
	return nil
}

func init() {
	imageCmd.Flags().StringP("format", "f", "text", "output format (text, json)")
	imageCmd.Flags().String("thumbnail", "", "also write a scaled-down preview to this path")

	_ = viper.BindPFlag("output.format", imageCmd.Flags().Lookup("format"))

	rootCmd.AddCommand(imageCmd)
}
