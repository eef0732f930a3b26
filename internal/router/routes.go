package router

import (
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/TN1ck/german-tax-id-validator/internal/handlers"
	"github.com/TN1ck/german-tax-id-validator/internal/middleware"
	"github.com/TN1ck/german-tax-id-validator/internal/models"
	"github.com/TN1ck/german-tax-id-validator/internal/usecase"
	"github.com/TN1ck/german-tax-id-validator/internal/validation"
)

const (
	UserPrefix   = "/api/user"
	TaxIDPrefix  = "/api/taxid"
	RegisterPath = "/register"
	LoginPath    = "/login"
	TaxIDsPath   = "/taxids"
	ValidatePath = "/validate"
	LookupPath   = "/{taxID}"
)

type Store interface {
	models.UserStorage
	models.TaxIDStorage
}

type Options struct {
	JWTSecret   string
	TokenTTL    time.Duration
	Exclude2015 bool
	Exclude2016 bool
}

func SetupRoutes(store Store, opts Options) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)

	taxIDUC := usecase.NewTaxIDUseCase(store, validation.NewEraValidator(opts.Exclude2015, opts.Exclude2016))
	passwords := validation.NewDefaultPasswordValidator()

	r.Post(UserPrefix+RegisterPath, handlers.NewRegisterHandler(store, passwords, opts.JWTSecret, opts.TokenTTL).ServeHTTP)
	r.Post(UserPrefix+LoginPath, handlers.NewLoginHandler(store, opts.JWTSecret, opts.TokenTTL).ServeHTTP)

	r.Post(TaxIDPrefix+ValidatePath, handlers.NewValidateHandler().ServeHTTP)
	r.Get(TaxIDPrefix+LookupPath, handlers.NewLookupHandler(taxIDUC).ServeHTTP)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(opts.JWTSecret))
		r.Post(UserPrefix+TaxIDsPath, handlers.NewTaxIDHandler(taxIDUC).ServeHTTP)
		r.Get(UserPrefix+TaxIDsPath, handlers.NewTaxIDGetHandler(taxIDUC).ServeHTTP)
	})

	return r
}
