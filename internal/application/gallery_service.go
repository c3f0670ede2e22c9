package application

import (
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/raushan1895/resort360/internal/domain"
)

// ImageUploader stores a file and returns its public URL.
type ImageUploader interface {
	Upload(file multipart.File, fileHeader *multipart.FileHeader) (string, error)
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// GalleryService uploads room images and records them on the room.
type GalleryService struct {
	uploader ImageUploader
	roomRepo domain.RoomRepository
}

func NewGalleryService(uploader ImageUploader, roomRepo domain.RoomRepository) *GalleryService {
	return &GalleryService{uploader: uploader, roomRepo: roomRepo}
}

// AddRoomImage validates the content type, uploads the file and attaches
// the resulting URL to the room.
func (s *GalleryService) AddRoomImage(roomID int, file multipart.File, fileHeader *multipart.FileHeader, caption string) (*domain.RoomImage, error) {
	contentType := strings.ToLower(fileHeader.Header.Get("Content-Type"))
	if !allowedImageTypes[contentType] {
		return nil, domain.NewValidationError("image", fmt.Sprintf("unsupported content type %q", contentType))
	}

	if _, err := s.roomRepo.GetByID(roomID); err != nil {
		return nil, err
	}

	url, err := s.uploader.Upload(file, fileHeader)
	if err != nil {
		return nil, fmt.Errorf("upload image: %w", err)
	}

	img := &domain.RoomImage{URL: url, Caption: caption}
	if err := s.roomRepo.AddImage(roomID, img); err != nil {
		return nil, fmt.Errorf("attach image to room %d: %w", roomID, err)
	}

	return img, nil
}
