package transform

import (
	"go.trai.ch/fontpack/internal/core/domain"
	"go.trai.ch/fontpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// Publish writes every compiled font into the virtual filesystem, in request
// format order, under <cssFontsPath>/<fontName>.<ext> relative to baseDir.
//
// Each path is invalidated before it is written. The first failed write stops
// publication; fonts written before it stay in place. The returned map holds
// the published file name of each format.
func Publish(
	vfs ports.VirtualFS,
	req *domain.GenerationRequest,
	baseDir string,
	fonts map[domain.Format][]byte,
	times domain.Timestamps,
) (map[domain.Format]string, []domain.PublishedArtifact, error) {
	urls := make(map[domain.Format]string, len(req.Formats))
	published := make([]domain.PublishedArtifact, 0, len(req.Formats))

	dir := resolve(baseDir, req.CSSFontsURL)
	for _, format := range req.Formats {
		content, ok := fonts[format]
		if !ok {
			return urls, published, zerr.With(
				zerr.Wrap(domain.ErrMissingFontOutput, "compiler returned no font"),
				"format", string(format),
			)
		}

		name := format.FileName(req.FontName)
		path := resolve(dir, name)

		vfs.Invalidate(path)
		if err := vfs.Write(path, content, times); err != nil {
			return urls, published, zerr.With(
				zerr.With(zerr.Wrap(domain.ErrPublicationFailed, err.Error()), "path", path),
				"format", string(format),
			)
		}

		urls[format] = name
		published = append(published, domain.PublishedArtifact{
			Path:    path,
			Format:  format,
			Content: content,
			Times:   times,
		})
	}
	return urls, published, nil
}
