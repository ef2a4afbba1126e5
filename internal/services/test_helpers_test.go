package services_test

import (
	"github.com/getmentor/formsdemo/internal/models"
	"github.com/getmentor/formsdemo/pkg/logger"
)

func init() {
	// Initialize logger for tests
	if err := logger.Initialize(logger.Config{
		Level:       "debug",
		Environment: "development",
	}); err != nil {
		panic(err)
	}
}

const testPicture = "data:image/png;base64,iVBORw0KGgo="

// pngHeader is enough for content sniffing to report image/png
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func validRaw() *models.RawSubmission {
	return &models.RawSubmission{
		Name:            "Alice",
		Age:             "30",
		Email:           "alice@example.com",
		Password:        "Abc123!@",
		ConfirmPassword: "Abc123!@",
		Gender:          "female",
		AcceptTerms:     true,
		Country:         "Chile",
	}
}
