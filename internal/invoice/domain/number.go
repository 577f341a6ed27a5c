package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewNumber produces an invoice number of the form
// PREFIX-<digits>-<4 chars>, combining the tail of the millisecond
// timestamp with a random component. Unique with overwhelming
// probability but not by construction; callers must treat a
// persistence-time collision as a retryable conflict.
func NewNumber(prefix string, now time.Time) string {
	millis := strconv.FormatInt(now.UnixMilli(), 10)
	if len(millis) > 7 {
		millis = millis[7:]
	}
	random := strings.ToUpper(uuid.NewString()[:4])
	return fmt.Sprintf("%s-%s-%s", prefix, millis, random)
}
