// Copyright (c) 2025 Doğan Keleş
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package locale holds the user-facing copy for cvchat.
//
// All fixed strings shown by the client live here, in one table per
// supported language. Which table is active is purely a configuration
// concern; nothing else changes between locales.
package locale

// Strings is the full set of fixed copy used by the client.
type Strings struct {
	// Conversation view
	Welcome          string // seed assistant greeting
	ChatError        string // generic banner text when a query fails
	ErrorBubble      string // text of the error-role message bubble
	InputPlaceholder string
	Thinking         string
	HeaderTitle      string
	HeaderSubtitle   string
	Footer           string

	// Download view
	DownloadTitle     string
	DownloadSubtitle  string
	NameLabel         string
	EmailLabel        string
	CompanyLabel      string
	SubmitLabel       string
	DownloadRefused   string // backend answered success:false
	DownloadError     string // transport or decode failure
	DownloadSucceeded string
	BackToChat        string

	// Link rendering
	DownloadLinkLabel string
}

// English is the default copy table.
var English = Strings{
	Welcome:          "Hello! I'm an AI assistant that can answer questions about this candidate's experience, skills, and projects. Feel free to ask me anything!",
	ChatError:        "Something went wrong. Please try again.",
	ErrorBubble:      "I apologize, but I encountered an error processing your request. Please try again.",
	InputPlaceholder: "Ask about experience, skills, projects, or GitHub activity...",
	Thinking:         "AI is thinking...",
	HeaderTitle:      "Doğan Keleş",
	HeaderSubtitle:   "Interactive AI-Powered CV",
	Footer:           "Powered by AI • Ask questions in English or Turkish",

	DownloadTitle:     "Download CV",
	DownloadSubtitle:  "Backend & AI Specialist",
	NameLabel:         "Full name",
	EmailLabel:        "E-mail",
	CompanyLabel:      "Company (optional)",
	SubmitLabel:       "Generate file",
	DownloadRefused:   "Download failed. Please try again.",
	DownloadError:     "Server error. Please try again.",
	DownloadSucceeded: "Done! Your download has started.",
	BackToChat:        "Back to chat",

	DownloadLinkLabel: "Download CV",
}

// Turkish mirrors the copy of the original Turkish screens.
var Turkish = Strings{
	Welcome:          "Merhaba! Bu adayın deneyimi, yetenekleri ve projeleri hakkında soruları yanıtlayabilen bir yapay zekâ asistanıyım. Bana istediğinizi sorabilirsiniz!",
	ChatError:        "Bir şeyler ters gitti. Lütfen tekrar deneyin.",
	ErrorBubble:      "Üzgünüm, isteğinizi işlerken bir hatayla karşılaştım. Lütfen tekrar deneyin.",
	InputPlaceholder: "Deneyim, yetenekler, projeler veya GitHub aktivitesi hakkında sorun...",
	Thinking:         "Yapay zekâ düşünüyor...",
	HeaderTitle:      "Doğan Keleş",
	HeaderSubtitle:   "Etkileşimli Yapay Zekâ Destekli CV",
	Footer:           "Yapay zekâ destekli • İngilizce veya Türkçe soru sorabilirsiniz",

	DownloadTitle:     "Özgeçmiş İndir",
	DownloadSubtitle:  "Backend & AI Specialist",
	NameLabel:         "İsim Soyisim",
	EmailLabel:        "E-Posta",
	CompanyLabel:      "Şirket (isteğe bağlı)",
	SubmitLabel:       "Dosyayı Oluştur",
	DownloadRefused:   "İndirme başarısız.",
	DownloadError:     "Sunucu hatası.",
	DownloadSucceeded: "İşlem Başarılı!",
	BackToChat:        "Chat Ekranına Dön",

	DownloadLinkLabel: "Özgeçmiş İndir",
}

// ForTag returns the copy table for a language tag, falling back to English
// for anything it does not recognize.
func ForTag(tag string) Strings {
	switch tag {
	case "tr", "tr-TR":
		return Turkish
	default:
		return English
	}
}
