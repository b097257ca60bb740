package rest

import (
	"context"
	"mime/multipart"

	fileDomain "filedrop-api/internal/domain/file"
	userDomain "filedrop-api/internal/domain/user"
)

type FakeUserService struct {
	FindByEmailFunc func(ctx context.Context, email string) (*userDomain.User, error)
	SignupFunc      func(ctx context.Context, u userDomain.User, password string) (*userDomain.User, error)
}

func (f *FakeUserService) FindByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	return f.FindByEmailFunc(ctx, email)
}

func (f *FakeUserService) Signup(ctx context.Context, u userDomain.User, password string) (*userDomain.User, error) {
	return f.SignupFunc(ctx, u, password)
}

type fakeAuthService struct {
	GenerateTokenFunc func(u *userDomain.User, password string) (string, error)
}

func (f *fakeAuthService) GenerateToken(u *userDomain.User, password string) (string, error) {
	return f.GenerateTokenFunc(u, password)
}

type FakeFileService struct {
	IngestFunc    func(ctx context.Context, in *multipart.FileHeader) (*fileDomain.File, error)
	ListFilesFunc func(ctx context.Context) (fileDomain.Files, error)
}

func (f *FakeFileService) Ingest(ctx context.Context, in *multipart.FileHeader) (*fileDomain.File, error) {
	return f.IngestFunc(ctx, in)
}

func (f *FakeFileService) ListFiles(ctx context.Context) (fileDomain.Files, error) {
	return f.ListFilesFunc(ctx)
}
