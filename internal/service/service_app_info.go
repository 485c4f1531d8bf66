package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/secret-decoder/internal/logger"
)

type appInfoService struct {
	version string
}

// NewAppInfoService serves version from /api/version/. Surrounding
// whitespace is dropped; a blank version returns [ErrVersionIsNotSpecified].
func NewAppInfoService(version string, logger *logger.Logger) (AppInfoService, error) {
	version = strings.TrimSpace(version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("version", version).Msg("serving bundle server version")
	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
