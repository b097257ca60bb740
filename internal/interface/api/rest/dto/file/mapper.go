package file

import (
	"filedrop-api/internal/domain/file"
)

func ToResponseFile(fDomain file.File) File {
	var f = File{
		UUID:        fDomain.UUID,
		FileName:    fDomain.FileName,
		SizeBytes:   fDomain.SizeBytes,
		StoragePath: fDomain.StoragePath,
		DownloadURL: fDomain.DownloadURL,
		UploadedAt:  fDomain.UploadedAt,
	}

	return f
}

func ToResponseFiles(fsDomain file.Files) Files {
	fs := make(Files, len(fsDomain))
	for idx, f := range fsDomain {
		fs[idx] = ToResponseFile(*f)
	}

	return fs
}
