package i18n

import "strings"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "kind" or "field").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	var msg string
	switch t.lang {
	case "ja":
		switch code {
		case "unsupported_kind":
			msg = "ディープコピーできない種類の値です"
		case "max_depth":
			msg = "最大の深さを超えました"
		case "unexported_field":
			msg = "非公開フィールドはコピーできません"
		case "codec_error":
			msg = "エンコード/デコードに失敗しました"
		case "invalid_config":
			msg = "設定が不正です"
		}
	default: // "en"
		switch code {
		case "unsupported_kind":
			msg = "value kind cannot be deep copied"
		case "max_depth":
			msg = "max depth exceeded"
		case "unexported_field":
			msg = "unexported field not copied"
		case "codec_error":
			msg = "encode/decode failed"
		case "invalid_config":
			msg = "invalid configuration"
		}
	}
	if msg == "" {
		return code
	}
	if d := detail(data); d != "" {
		return msg + " (" + d + ")"
	}
	return msg
}

// detail renders the well-known data keys in a fixed order.
func detail(data map[string]string) string {
	var parts []string
	for _, k := range []string{"kind", "type", "field", "limit", "strategy", "format"} {
		if v, ok := data[k]; ok && v != "" {
			parts = append(parts, k+"="+v)
		}
	}
	return strings.Join(parts, ", ")
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
