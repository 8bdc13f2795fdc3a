package domain

import (
	"context"
	"io"
	"strings"

	"github.com/Pratyush-Px/Gatherly/internal/entity"
	"github.com/Pratyush-Px/Gatherly/internal/model"
	"github.com/Pratyush-Px/Gatherly/internal/repository"
	"github.com/Pratyush-Px/Gatherly/pkg/errorx"
	"github.com/Pratyush-Px/Gatherly/pkg/storage"
	"github.com/Pratyush-Px/Gatherly/pkg/xcontext"
	"github.com/google/uuid"
)

type FileDomain interface {
	UploadImage(ctx context.Context, req *model.UploadImageRequest) (*model.UploadImageResponse, error)
}

type fileDomain struct {
	fileRepo    repository.FileRepository
	fileStorage storage.Storage
}

func NewFileDomain(fileRepo repository.FileRepository, fileStorage storage.Storage) *fileDomain {
	return &fileDomain{fileRepo: fileRepo, fileStorage: fileStorage}
}

func (d *fileDomain) UploadImage(
	ctx context.Context, _ *model.UploadImageRequest,
) (*model.UploadImageResponse, error) {
	httpReq := xcontext.HTTPRequest(ctx)
	if err := httpReq.ParseMultipartForm(xcontext.Configs(ctx).File.MaxSize); err != nil {
		return nil, errorx.New(errorx.BadRequest, "Request must be multipart form")
	}

	file, header, err := httpReq.FormFile("image")
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Error retrieving the file")
	}
	defer file.Close()

	mime := header.Header.Get("Content-Type")
	if !strings.HasPrefix(mime, "image/") {
		return nil, errorx.New(errorx.BadRequest, "We just accept image files")
	}

	data, err := io.ReadAll(file)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot read uploaded file: %v", err)
		return nil, errorx.Unknown
	}

	uresp, err := d.fileStorage.Upload(ctx, &storage.UploadObject{
		Bucket:   xcontext.Configs(ctx).Storage.Bucket,
		Prefix:   "images",
		FileName: header.Filename,
		Mime:     mime,
		Data:     data,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot upload image: %v", err)
		return nil, errorx.Unknown
	}

	err = d.fileRepo.Create(ctx, &entity.File{
		Base:   entity.Base{ID: uuid.NewString()},
		UserID: xcontext.RequestUserID(ctx),
		Name:   uresp.FileName,
		Mime:   mime,
		Url:    uresp.Url,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot save file record: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UploadImageResponse{Url: uresp.Url}, nil
}
