package usecase

import (
	"context"
	"os"
	"path"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/grfetch/pkg/domain/interfaces"
	"github.com/m-mizutani/grfetch/pkg/domain/model"
	"github.com/m-mizutani/grfetch/pkg/domain/types"
)

type photoUseCase struct {
	cameraClient interfaces.CameraClient
	outputDir    string
}

// NewPhoto creates a new instance of PhotoUseCase writing photos to outputDir
func NewPhoto(cameraClient interfaces.CameraClient, outputDir string) interfaces.PhotoUseCase {
	return &photoUseCase{
		cameraClient: cameraClient,
		outputDir:    outputDir,
	}
}

// CheckConnection probes the camera base address
func (uc *photoUseCase) CheckConnection(ctx context.Context) bool {
	logger := ctxlog.From(ctx)

	logger.Debug("Testing connection to camera")
	if err := uc.cameraClient.Probe(ctx); err != nil {
		logger.Error("Failed to connect to camera", "error", err)
		return false
	}
	logger.Debug("Connection successful")

	return true
}

// FetchPhotoList fetches the listing and flattens it. Any failure is logged
// and turned into an empty list.
func (uc *photoUseCase) FetchPhotoList(ctx context.Context) *model.PhotoList {
	logger := ctxlog.From(ctx)

	logger.Debug("Fetching photo list from camera")
	resp, err := uc.cameraClient.ListPhotos(ctx)
	if err != nil {
		status := model.ListStatusTransportError
		switch {
		case goerr.HasTag(err, types.ErrTagParse):
			status = model.ListStatusParseError
			logger.Error("Unable to parse photo list", "error", err)
		case goerr.HasTag(err, types.ErrTagTransport):
			logger.Error("Unable to fetch photo list from camera", "error", err)
		default:
			logger.Error("Unexpected error occurred", "error", err)
		}

		return &model.PhotoList{
			Paths:  []string{},
			Status: status,
			Err:    err,
		}
	}
	logger.Debug("Response received")

	if resp.ErrCode == nil {
		logger.Error("Photo list has no errCode")
		return &model.PhotoList{
			Paths:  []string{},
			Status: model.ListStatusParseError,
		}
	}

	if *resp.ErrCode != types.ListingOK {
		logger.Error("Camera returned an error",
			"err_code", *resp.ErrCode,
			"err_msg", resp.ErrMsg,
		)
		return &model.PhotoList{
			Paths:   []string{},
			Status:  model.ListStatusApplicationError,
			ErrCode: *resp.ErrCode,
			ErrMsg:  resp.ErrMsg,
		}
	}

	return &model.PhotoList{
		Paths:  resp.PhotoPaths(),
		Status: model.ListStatusOK,
	}
}

// DownloadPhoto fetches a photo and writes it as <outputDir>/<basename>. The
// body is read completely before the file is created, so a failed transfer
// leaves no file behind.
func (uc *photoUseCase) DownloadPhoto(ctx context.Context, photoPath string) (*model.DownloadResult, error) {
	logger := ctxlog.From(ctx)

	logger.Debug("Downloading photo", "photo", photoPath)

	fileName := path.Base(photoPath)
	if fileName == "." || fileName == "/" || fileName == ".." {
		return nil, goerr.New("invalid photo path", goerr.V("photo", photoPath))
	}

	data, err := uc.cameraClient.FetchPhoto(ctx, photoPath)
	if err != nil {
		logger.Error("Failed to download photo", "error", err, "photo", photoPath)
		return nil, goerr.Wrap(err, "failed to download photo", goerr.V("photo", photoPath))
	}

	if err := os.MkdirAll(uc.outputDir, 0755); err != nil {
		logger.Error("Failed to create output directory", "error", err, "dir", uc.outputDir)
		return nil, goerr.Wrap(err, "failed to create output directory", goerr.V("dir", uc.outputDir))
	}

	localPath := filepath.Join(uc.outputDir, fileName)
	if err := os.WriteFile(localPath, data, 0644); err != nil {
		logger.Error("Failed to write photo", "error", err, "path", localPath)
		return nil, goerr.Wrap(err, "failed to write photo", goerr.V("path", localPath))
	}

	logger.Info("Photo downloaded",
		"photo", photoPath,
		"path", localPath,
		"size_bytes", len(data),
	)

	return &model.DownloadResult{
		PhotoPath: photoPath,
		LocalPath: localPath,
		Size:      int64(len(data)),
	}, nil
}
