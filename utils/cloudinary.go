package utils

import (
	"context"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Uploader stores customer documents in Cloudinary and hands back the
// secure URL recorded as the document path.
type Uploader struct {
	cld *cloudinary.Cloudinary
}

func NewUploader(cloudinaryURL string) (*Uploader, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, err
	}
	return &Uploader{cld: cld}, nil
}

// Upload pushes the file under documents/<publicID> and returns its URL.
func (u *Uploader) Upload(ctx context.Context, file interface{}, publicID string) (string, error) {
	resp, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID: publicID,
		Folder:   "documents",
	})
	if err != nil {
		return "", err
	}
	return resp.SecureURL, nil
}
