package bottle

import (
	"encoding/base64"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/bottled-app/bottled/internal/domain"
)

// MaxAttachmentSize caps a single attachment at 10 MB. Attachments live
// inline in SQLite as data URLs, so unbounded files would bloat the
// database.
const MaxAttachmentSize = 10 << 20

// LoadAttachments reads files from disk and converts each into a
// MediaAttachment with a base64 data URL payload.
func LoadAttachments(paths []string) ([]domain.MediaAttachment, error) {
	var attachments []domain.MediaAttachment
	for _, p := range paths {
		a, err := loadAttachment(p)
		if err != nil {
			return nil, fmt.Errorf("attach %s: %w", p, err)
		}
		attachments = append(attachments, a)
	}
	return attachments, nil
}

func loadAttachment(path string) (domain.MediaAttachment, error) {
	info, err := os.Stat(path)
	if err != nil {
		return domain.MediaAttachment{}, err
	}
	if info.Size() > MaxAttachmentSize {
		return domain.MediaAttachment{}, fmt.Errorf("%w (%s, limit %s)",
			domain.ErrAttachmentTooLarge, domain.HumanSize(info.Size()), domain.HumanSize(MaxAttachmentSize))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.MediaAttachment{}, err
	}

	mimeType := detectMIME(path, data)
	return domain.MediaAttachment{
		ID:   uuid.NewString(),
		Name: filepath.Base(path),
		Type: mimeType,
		Data: "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data),
		Size: info.Size(),
	}, nil
}

// detectMIME prefers the file extension and falls back to content
// sniffing.
func detectMIME(path string, data []byte) string {
	if t := mime.TypeByExtension(filepath.Ext(path)); t != "" {
		return t
	}
	return http.DetectContentType(data)
}

// TypeIcon returns a display glyph for an attachment MIME type.
func TypeIcon(mimeType string) string {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return "🖼️"
	case strings.HasPrefix(mimeType, "audio/"):
		return "🎵"
	case strings.HasPrefix(mimeType, "video/"):
		return "🎬"
	default:
		return "📄"
	}
}
