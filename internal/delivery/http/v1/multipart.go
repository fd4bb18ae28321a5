package v1

import (
	"io"

	"hirehub/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// maxUploadBytes caps multipart file parts. Large enough for resumes and
// logos, small enough to keep memory bounded.
const maxUploadBytes = 10 << 20

// formFile reads an optional multipart file part. A missing part returns
// empty values and no error; an oversized or unreadable one errors.
func formFile(c *gin.Context, field string) (name, contentType string, data []byte, err error) {
	header, ferr := c.FormFile(field)
	if ferr != nil {
		return "", "", nil, nil
	}
	if header.Size > maxUploadBytes {
		return "", "", nil, apperror.BadRequest("File is too large")
	}

	f, ferr := header.Open()
	if ferr != nil {
		return "", "", nil, apperror.BadRequest("Could not read uploaded file")
	}
	defer f.Close()

	data, ferr = io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if ferr != nil {
		return "", "", nil, apperror.BadRequest("Could not read uploaded file")
	}
	if int64(len(data)) > maxUploadBytes {
		return "", "", nil, apperror.BadRequest("File is too large")
	}

	return header.Filename, header.Header.Get("Content-Type"), data, nil
}
