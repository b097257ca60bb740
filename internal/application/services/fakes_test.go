package services

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rabbitmq/amqp091-go"

	fileDomain "filedrop-api/internal/domain/file"
	userDomain "filedrop-api/internal/domain/user"
	"filedrop-api/internal/infrastructure/mq"
)

type fakeUserRepo struct {
	FetchUserByEmailFunc func(ctx context.Context, email string) (*userDomain.User, error)
	CreateUserFunc       func(ctx context.Context, req userDomain.User) (*userDomain.User, error)
}

func (f *fakeUserRepo) FetchUserByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	return f.FetchUserByEmailFunc(ctx, email)
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, req userDomain.User) (*userDomain.User, error) {
	return f.CreateUserFunc(ctx, req)
}

type fakeFileRepo struct {
	FetchFilesFunc func(ctx context.Context) (fileDomain.Files, error)
	CreateFileFunc func(ctx context.Context, req *fileDomain.File) (*fileDomain.File, error)
}

func (f *fakeFileRepo) FetchFiles(ctx context.Context) (fileDomain.Files, error) {
	return f.FetchFilesFunc(ctx)
}

func (f *fakeFileRepo) CreateFile(ctx context.Context, req *fileDomain.File) (*fileDomain.File, error) {
	return f.CreateFileFunc(ctx, req)
}

// fakeRabbitMQ only buffers events; nothing drains the channel in tests.
type fakeRabbitMQ struct {
	in chan mq.Event
}

func newFakeRabbitMQ() *fakeRabbitMQ {
	return &fakeRabbitMQ{in: make(chan mq.Event, 16)}
}

func (f *fakeRabbitMQ) Connect(ctx context.Context, dsn string) error { return nil }
func (f *fakeRabbitMQ) Init() error                                   { return nil }
func (f *fakeRabbitMQ) PublisherWorker(ctx context.Context)           {}
func (f *fakeRabbitMQ) GetInputChan() chan mq.Event                   { return f.in }
func (f *fakeRabbitMQ) GetConn() *amqp091.Connection                  { return nil }

func newTestCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "test", Name: "general_counters"},
		[]string{"result"},
	)
}
