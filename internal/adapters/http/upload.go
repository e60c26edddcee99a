package httpadapter

import (
	"errors"
	"image"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"svw.info/cube/internal/domain"
	"svw.info/cube/internal/imageio"
)

// readFaces decodes every face photo present in the multipart form.
// Absent faces are left out so the pipeline can name them.
func readFaces(c *gin.Context) (map[domain.Face]image.Image, error) {
	faces := make(map[domain.Face]image.Image, 6)
	for _, f := range domain.Faces {
		fh, err := c.FormFile(strings.ToLower(f.String()))
		if errors.Is(err, http.ErrMissingFile) {
			continue
		}
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, err
		}
		if err != nil {
			return nil, &domain.ImageError{Face: f, Reason: err.Error()}
		}
		if fh.Size > maxUpload {
			return nil, &domain.ImageError{Face: f, Reason: "file larger than 10MB"}
		}
		file, err := fh.Open()
		if err != nil {
			return nil, &domain.ImageError{Face: f, Reason: err.Error()}
		}
		img, err := imageio.Decode(f, file)
		file.Close()
		if err != nil {
			return nil, err
		}
		faces[f] = img
	}
	return faces, nil
}
