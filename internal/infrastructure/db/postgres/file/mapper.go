package file

import (
	domain "filedrop-api/internal/domain/file"
)

func fromDBModel(model *File) *domain.File {
	var f = &domain.File{
		UUID: model.UUID,

		FileName:    model.FileName,
		StoragePath: model.StoragePath,
		SizeBytes:   model.SizeBytes,
		DownloadURL: model.DownloadURL,

		UploadedAt: model.UploadedAt,
	}

	return f
}

func fromDBModels(models *Files) domain.Files {
	fs := make(domain.Files, len(*models))
	for idx, f := range *models {
		fs[idx] = fromDBModel(f)
	}

	return fs
}
