package upload

import (
	"fmt"
	"strings"
)

// Kind selects the upload endpoint and the advisory client-side limits.
type Kind string

// Upload kinds accepted by the backend.
const (
	KindVideo     Kind = "video"
	KindThumbnail Kind = "thumbnail"
	KindMaterial  Kind = "material"
)

// Config describes one upload kind: where it goes and what the server is
// likely to accept. Accept and MaxSize are hints surfaced to the user; the
// server is the authority and revalidates both.
type Config struct {
	Kind    Kind
	Accept  []string
	MaxSize int64
	Hint    string
}

const (
	mb = 1 << 20

	maxVideoSize     = 500 * mb
	maxThumbnailSize = 5 * mb
	maxMaterialSize  = 50 * mb
)

var kindConfigs = map[Kind]Config{
	KindVideo: {
		Kind:    KindVideo,
		Accept:  []string{"video/mp4", "video/quicktime", "video/x-msvideo", "video/x-matroska"},
		MaxSize: maxVideoSize,
		Hint:    "Max 500MB (MP4, MOV, AVI, MKV)",
	},
	KindThumbnail: {
		Kind:    KindThumbnail,
		Accept:  []string{"image/jpeg", "image/png", "image/webp"},
		MaxSize: maxThumbnailSize,
		Hint:    "Max 5MB (JPG, PNG, WebP)",
	},
	KindMaterial: {
		Kind: KindMaterial,
		Accept: []string{
			"application/pdf",
			"application/msword",
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			"application/vnd.ms-excel",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			"text/plain",
		},
		MaxSize: maxMaterialSize,
		Hint:    "Max 50MB (PDF, Word, Excel, TXT)",
	},
}

// ParseKind converts a user-supplied string into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(s))
	if _, ok := kindConfigs[k]; !ok {
		return "", fmt.Errorf("unknown upload kind %q (want video, thumbnail, or material)", s)
	}
	return k, nil
}

// ConfigFor resolves a kind to its endpoint configuration.
func ConfigFor(kind Kind) (Config, error) {
	cfg, ok := kindConfigs[kind]
	if !ok {
		return Config{}, fmt.Errorf("unknown upload kind %q", kind)
	}
	return cfg, nil
}

// Endpoint returns the API path for uploading this kind to the given target.
func (cfg Config) Endpoint(targetID int) string {
	return fmt.Sprintf("/api/v1/uploads/%s/%d", cfg.Kind, targetID)
}
