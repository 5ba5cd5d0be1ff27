package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"slices"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"

	"glowquad/misc"
)

// ScreenshotName picks a file name in dir that no entry uses yet.
func ScreenshotName(dir string, now time.Time) (string, error) {
	timeStr := now.Format("0102150405")

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name()
	}

	filename := fmt.Sprintf("glow-%s.png", timeStr)
	for counter := 2; slices.Contains(names, filename); counter++ {
		filename = fmt.Sprintf("glow-%s-(%d).png", timeStr, counter)
	}

	return filename, nil
}

func ImageImageFromEbImage(img *eb.Image) *image.RGBA {
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	img.ReadPixels(rgba.Pix)
	return rgba
}

// SaveScreenshot writes img as png into dir and returns the file name.
func SaveScreenshot(img image.Image, dir string) (string, error) {
	filename, err := ScreenshotName(dir, time.Now())
	if err != nil {
		return "", err
	}

	buffer := &bytes.Buffer{}
	if err := png.Encode(buffer, img); err != nil {
		return "", err
	}

	toWrite := buffer.Bytes()
	misc.InfoLogger.Printf("bytes len : %d", len(toWrite))

	if err := os.WriteFile(filepath.Join(dir, filename), toWrite, 0644); err != nil {
		return "", err
	}

	return filename, nil
}

func TakeScreenshot(img *eb.Image) (string, error) {
	return SaveScreenshot(ImageImageFromEbImage(img), ".")
}
