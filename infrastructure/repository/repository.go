package repository

//go:generate mockgen -source=repository.go -destination=mocks/repository.go -package=mocks

import (
	"errors"

	"github.com/vfg2006/adreport-api/internal/domain"
)

// Erros da camada de persistência. Ambos os backends (memória e PostgreSQL) expõem o
// mesmo contrato: violação de unicidade vira ErrDuplicateUser e falha de
// acesso ao backend persistente vira ErrStoreUnavailable. O backend em
// memória nunca falha por indisponibilidade.
var (
	ErrDuplicateUser    = errors.New("username ou email já cadastrado")
	ErrStoreUnavailable = errors.New("banco de dados indisponível")
)

type UserRepository interface {
	CreateUser(user *domain.User) (*domain.User, error)
	GetUserByUsername(username string) (*domain.User, error)
}

type AdRepository interface {
	CreateAd(ad *domain.Ad) (*domain.Ad, error)
	ListAdsByUser(userID int) ([]*domain.Ad, error)
	AggregateByUser(userID int) (*domain.AggregateValues, error)
}
