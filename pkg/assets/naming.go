// Package assets supplies the default output naming templates for emitted
// chunks and static assets, and merges them into host-provided naming
// options. Templates use the host's [name]/[hash]/[ext] placeholder
// convention; this package never interprets them, it only hands them over.
package assets

import (
	"path/filepath"
	"strings"
)

// Well-known output naming option keys
const (
	KeyChunkFileNames = "chunkFileNames"
	KeyEntryFileNames = "entryFileNames"
	KeyAssetFileNames = "assetFileNames"
)

// Default templates
const (
	DefaultChunkTemplate = "assets/js/[name]-[hash].js"
	DefaultEntryTemplate = "assets/js/[name]-[hash].js"
	DefaultAssetTemplate = "assets/[ext]/[name]-[hash].[ext]"

	cssTemplate   = "assets/css/[name]-[hash].css"
	imageTemplate = "assets/img/[name]-[hash].[ext]"
	fontTemplate  = "assets/fonts/[name]-[hash].[ext]"
	mediaTemplate = "assets/media/[name]-[hash].[ext]"
)

var imageExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".svg": true,
	".webp": true, ".avif": true, ".ico": true, ".bmp": true,
}

var fontExts = map[string]bool{
	".woff": true, ".woff2": true, ".eot": true, ".ttf": true, ".otf": true,
}

var mediaExts = map[string]bool{
	".mp4": true, ".webm": true, ".ogg": true, ".mp3": true, ".wav": true,
	".flac": true, ".aac": true,
}

// Defaults returns the default naming options
func Defaults() map[string]string {
	return map[string]string{
		KeyChunkFileNames: DefaultChunkTemplate,
		KeyEntryFileNames: DefaultEntryTemplate,
		KeyAssetFileNames: DefaultAssetTemplate,
	}
}

// Apply merges the default naming into existing host options and returns the
// result. With override set, defaults replace whatever the host configured;
// otherwise they only fill keys the host left empty. The input map is not
// modified.
func Apply(existing map[string]string, override bool) map[string]string {
	merged := make(map[string]string, len(existing)+3)
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range Defaults() {
		if override || merged[k] == "" {
			merged[k] = v
		}
	}
	return merged
}

// TemplateFor returns the asset template for one emitted file name, picking
// the css/image/font/media directory by extension. Unknown extensions get
// the generic asset template.
func TemplateFor(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch {
	case ext == ".css":
		return cssTemplate
	case imageExts[ext]:
		return imageTemplate
	case fontExts[ext]:
		return fontTemplate
	case mediaExts[ext]:
		return mediaTemplate
	default:
		return DefaultAssetTemplate
	}
}
