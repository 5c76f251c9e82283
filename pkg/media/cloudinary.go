package media

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.uber.org/zap"
)

// UploadProfile selects the target folder and transformation applied on upload.
type UploadProfile struct {
	Folder         string
	Transformation string
}

var (
	ProfileImage = UploadProfile{
		Folder:         "art-market/profile-images",
		Transformation: "c_fill,w_400,h_400/q_auto:good/f_auto",
	}
	PortfolioImage = UploadProfile{
		Folder:         "art-market/portfolio-images",
		Transformation: "c_fill,w_1200,h_800/q_auto:good/f_auto",
	}
	ProductImage = UploadProfile{
		Folder:         "art-market/product-images",
		Transformation: "c_fill,w_800,h_800/q_auto:good/f_auto",
	}
	ReferenceImage = UploadProfile{
		Folder:         "art-market/custom-orders",
		Transformation: "q_auto:good/f_auto",
	}
)

// Uploader is the image-hosting collaborator. Implementations return a
// stable public URL for the stored image.
type Uploader interface {
	UploadImage(ctx context.Context, r io.Reader, profile UploadProfile) (string, error)
}

type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
	log *zap.Logger
}

func NewCloudinaryUploader(cloudinaryURL string, log *zap.Logger) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}

	return &CloudinaryUploader{
		cld: cld,
		log: log.With(zap.String("collaborator", "cloudinary")),
	}, nil
}

func (u *CloudinaryUploader) UploadImage(ctx context.Context, r io.Reader, profile UploadProfile) (string, error) {
	resp, err := u.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:         profile.Folder,
		Transformation: profile.Transformation,
		ResourceType:   "auto",
	})
	if err != nil {
		u.log.Error("Failed to upload image",
			zap.Error(err),
			zap.String("folder", profile.Folder),
		)
		return "", fmt.Errorf("upload image to %s: %w", profile.Folder, err)
	}

	u.log.Info("Image uploaded",
		zap.String("folder", profile.Folder),
		zap.String("public_id", resp.PublicID),
	)

	return resp.SecureURL, nil
}
