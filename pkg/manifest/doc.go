// Package manifest loads slide lists for a carousel from YAML.
//
// A manifest looks like:
//
//	version: v1
//	title: Harbor
//	slides:
//	  - src: img/dawn.webp
//	    alt: Boats at dawn
//	  - src: https://example.com/noon.jpg
//	    alt: Noon
//	    width: 1600
//	    height: 900
//
// Relative sources are resolved against the manifest's directory. Local
// images with missing dimensions are probed by decoding only their header;
// PNG, JPEG, GIF, WebP, BMP and TIFF are recognized. A slide whose
// dimensions remain unknown is still valid: the carousel simply reserves no
// aspect ratio for it.
package manifest
