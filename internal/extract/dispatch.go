package extract

import (
	"path/filepath"
	"strings"

	"github.com/kmakeev/egrul-go/pkg/model"
	"github.com/kmakeev/egrul-go/pkg/types"
)

// filenameLETokens and filenameSPTokens are the filename fallback
// tokens from spec §4.4.
var (
	filenameLETokens = []string{"RUGFO", "EGRUL", "ЕГРЮЛ"}
	filenameSPTokens = []string{"RIGFO", "EGRIP", "ЕГРИП"}
)

// Classify determines which registry a file belongs to: content first
// (presence of a record-root tag), falling back to filename tokens.
// Returns types.ErrUnknownRegistry when neither signal is present.
func Classify(path string, content string) (model.RegistryKind, error) {
	for _, tag := range leRecordRootTags {
		if strings.Contains(content, "<"+tag) {
			return model.LE, nil
		}
	}
	for _, tag := range spRecordRootTags {
		if strings.Contains(content, "<"+tag) {
			return model.SP, nil
		}
	}

	base := strings.ToUpper(filepath.Base(path))
	for _, tok := range filenameLETokens {
		if strings.Contains(base, strings.ToUpper(tok)) {
			return model.LE, nil
		}
	}
	for _, tok := range filenameSPTokens {
		if strings.Contains(base, strings.ToUpper(tok)) {
			return model.SP, nil
		}
	}

	return model.Unknown, types.UnknownRegistryError("cannot classify %s by content or filename", path)
}
