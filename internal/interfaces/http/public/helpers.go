package public

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/sngm3741/unikz/api/internal/interfaces/http/common"
	publicapp "github.com/sngm3741/unikz/api/internal/public/application"
)

const (
	msgInvalidBody        = "Некорректный запрос"
	msgUniversityNotFound = "Университет не найден"
	msgMajorNotFound      = "Специальность не найдена"
)

var errEmptyBody = errors.New("empty request body")

// decodeJSON reads at most limit bytes of r.Body into dst.
func decodeJSON(r *http.Request, limit int64, dst any) error {
	err := json.NewDecoder(io.LimitReader(r.Body, limit)).Decode(dst)
	if errors.Is(err, io.EOF) {
		return errEmptyBody
	}
	return err
}

// writeLookupError maps a read failure to 404 or a logged 500.
func (h *Handler) writeLookupError(w http.ResponseWriter, err error, notFound, op string) {
	if errors.Is(err, publicapp.ErrNotFound) {
		common.WriteError(h.logger, w, http.StatusNotFound, notFound)
		return
	}
	h.logger.Printf("%s failed: %v", op, err)
	common.WriteError(h.logger, w, http.StatusInternalServerError, common.GenericErrorMessage)
}
