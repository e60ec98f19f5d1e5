package config

import "github.com/ayoisaiah/unwind/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidFrameRate = &apperr.Error{
		Message: "frame rate must be between %d and %d, got %d",
	}

	errInvalidRecommendations = &apperr.Error{
		Message: "recommendations must be between %d and %d, got %d",
	}

	errUnknownPreset = &apperr.Error{
		Message: "unknown mixer preset: %s",
	}

	errUnknownVoice = &apperr.Error{
		Message: "unknown voice type: %s",
	}
)
