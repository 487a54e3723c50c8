package productService

import (
	"YeloSoul/internal/api/product"
	contextPkg "YeloSoul/pkg/context"
	"context"
	"mime/multipart"

	"github.com/sirupsen/logrus"
)

func (s *mediaDomainImpl) UploadImages(c context.Context, files []*multipart.FileHeader) (product.UploadImagesResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	if len(files) == 0 {
		return product.UploadImagesResponse{}, product.ErrNoFilesUploaded
	}

	urls := make([]string, 0, len(files))
	for _, file := range files {
		if err := s.utils.ValidateImageFile(file); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"file":       file.Filename,
				"error":      err.Error(),
			}).Warn("Image validation failed")
			return product.UploadImagesResponse{}, product.ErrInvalidImage
		}

		url, err := s.s3Client.UploadFile(file)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"file":       file.Filename,
				"error":      err.Error(),
			}).Error("Failed to upload image to S3")
			return product.UploadImagesResponse{}, err
		}

		urls = append(urls, url)
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"count":      len(urls),
	}).Info("Product images uploaded")

	return product.UploadImagesResponse{URLs: urls}, nil
}
