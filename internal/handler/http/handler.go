package http

import (
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type Handler struct {
	notes     store.NoteRepository
	basePath  string
	buildInfo models.AppBuildInfo
	traceIDs  *utils.UUIDGenerator
	validator validators.Validator

	logger *logger.Logger
}

func NewHandler(notes store.NoteRepository, basePath string, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Str("base_path", basePath).Msg("http handler created")
	return &Handler{
		notes:     notes,
		basePath:  basePath,
		buildInfo: buildInfo,
		traceIDs:  utils.NewUUIDGenerator(),
		validator: validators.NewNoteValidator(),
		logger:    logger,
	}
}
