package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"filedrop-api/internal/application/ports"
	domain "filedrop-api/internal/domain/user"
	"filedrop-api/internal/infrastructure/mq"
	userDTO "filedrop-api/internal/interface/api/rest/dto/user"
)

type UserService struct {
	userRepository domain.Repository
	hasher         ports.PasswordHasher
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	hasher ports.PasswordHasher,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		hasher:         hasher,
		mq:             mq,
		mCounter:       mCounter,
	}
}

func (us *UserService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return u, nil
}

// Signup hashes the password and persists the record as-is: absent or
// malformed fields are stored without validation.
func (us *UserService) Signup(ctx context.Context, u domain.User, password string) (*domain.User, error) {
	digest, err := us.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	u.PasswordHash = &digest

	uRet, err := us.userRepository.CreateUser(ctx, u)
	if err != nil {
		return nil, err
	}

	if uRet != nil {
		us.mq.GetInputChan() <- mq.Event{
			Id:      uuid.New(),
			TS:      time.Now(),
			Kind:    mq.KeyUserRegistered,
			Payload: userDTO.ToResponseUser(*uRet),
		}
	}

	us.mCounter.WithLabelValues("users_registered_total").Inc()

	return uRet, nil
}
