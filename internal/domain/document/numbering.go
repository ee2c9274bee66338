package document

import (
	"fmt"
	"strconv"
	"strings"

	"service_documents/internal/domain/entities"
)

// NumberPrefix is the business prefix of server-assigned numbers.
func NumberPrefix(kind entities.DocumentKind) string {
	switch kind {
	case entities.DocumentKindCotizacion:
		return "COT"
	case entities.DocumentKindOrdenTrabajo:
		return "OT"
	case entities.DocumentKindReporte:
		return "RPT"
	}
	return "DOC"
}

// NextNumber returns the number following the highest "<prefix>-<n>" already
// present in docs, e.g. COT-000007 after COT-000006. Numbers that do not follow
// the pattern are ignored.
func NextNumber(kind entities.DocumentKind, docs []entities.Document) string {
	prefix := NumberPrefix(kind) + "-"
	highest := 0
	for _, d := range docs {
		n := d.NumberValue()
		if !strings.HasPrefix(n, prefix) {
			continue
		}
		v, err := strconv.Atoi(strings.TrimPrefix(n, prefix))
		if err != nil {
			continue
		}
		if v > highest {
			highest = v
		}
	}
	return fmt.Sprintf("%s%06d", prefix, highest+1)
}
