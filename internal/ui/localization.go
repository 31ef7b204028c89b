package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeySettings          = "settings"
	KeyAPIKeyMenu        = "api_key_menu"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyEnterAPIKey       = "enter_api_key"
	KeyAPIKeyHint        = "api_key_hint"
	KeyAPIKeyRequired    = "api_key_required"
	KeyGetAPIKey         = "get_api_key"
	KeyAPISource         = "api_source"
	KeyMadeWith          = "made_with"
	KeyReadMore          = "read_more"
	KeyStatusLoading     = "status_loading"
	KeyStatusEmpty       = "status_empty"
	KeyStatusReady       = "status_ready"
	KeyNewsSettings      = "news_settings"
	KeyInterfaceSettings = "interface_settings"
	KeyCountry           = "country"
	KeyPageSize          = "page_size"
	KeyRequestTimeout    = "request_timeout"
	KeyRefreshSchedule   = "refresh_schedule"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	lang = resolveLanguage(lang)

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// resolveLanguage maps the settings value to a translation code
func resolveLanguage(lang string) string {
	if lang == "system" {
		// Use system locale - simplified to English for now
		return "en"
	}
	return lang
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Headlines",
		KeySettings:          "Settings…",
		KeyAPIKeyMenu:        "API Key…",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyEnterAPIKey:       "Enter your API key",
		KeyAPIKeyHint:        "Press Enter to save",
		KeyAPIKeyRequired:    "API key cannot be empty",
		KeyGetAPIKey:         "Get a key at newsapi.org",
		KeyAPISource:         "API Source: newsapi.org",
		KeyMadeWith:          "Made with Fyne",
		KeyReadMore:          "Read More",
		KeyStatusLoading:     "Loading headlines…",
		KeyStatusEmpty:       "No headlines",
		KeyStatusReady:       "%d headlines",
		KeyNewsSettings:      "News Settings",
		KeyInterfaceSettings: "Interface Settings",
		KeyCountry:           "Country",
		KeyPageSize:          "Headlines per fetch",
		KeyRequestTimeout:    "Request timeout (seconds)",
		KeyRefreshSchedule:   "Auto-refresh schedule (cron, empty to disable)",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved successfully!",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Заголовки",
		KeySettings:          "Настройки…",
		KeyAPIKeyMenu:        "API ключ…",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyEnterAPIKey:       "Введите ваш API ключ",
		KeyAPIKeyHint:        "Нажмите Enter, чтобы сохранить",
		KeyAPIKeyRequired:    "API ключ не может быть пустым",
		KeyGetAPIKey:         "Получить ключ на newsapi.org",
		KeyAPISource:         "Источник API: newsapi.org",
		KeyMadeWith:          "Сделано на Fyne",
		KeyReadMore:          "Читать далее",
		KeyStatusLoading:     "Загрузка заголовков…",
		KeyStatusEmpty:       "Нет заголовков",
		KeyStatusReady:       "Заголовков: %d",
		KeyNewsSettings:      "Настройки новостей",
		KeyInterfaceSettings: "Настройки интерфейса",
		KeyCountry:           "Страна",
		KeyPageSize:          "Заголовков за запрос",
		KeyRequestTimeout:    "Таймаут запроса (секунды)",
		KeyRefreshSchedule:   "Расписание автообновления (cron, пусто - выключено)",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeySettingsSaved:     "Настройки успешно сохранены!",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Manchetes",
		KeySettings:          "Configurações…",
		KeyAPIKeyMenu:        "Chave da API…",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyEnterAPIKey:       "Digite sua chave da API",
		KeyAPIKeyHint:        "Pressione Enter para salvar",
		KeyAPIKeyRequired:    "A chave da API não pode estar vazia",
		KeyGetAPIKey:         "Obtenha uma chave em newsapi.org",
		KeyAPISource:         "Fonte da API: newsapi.org",
		KeyMadeWith:          "Feito com Fyne",
		KeyReadMore:          "Leia Mais",
		KeyStatusLoading:     "Carregando manchetes…",
		KeyStatusEmpty:       "Nenhuma manchete",
		KeyStatusReady:       "%d manchetes",
		KeyNewsSettings:      "Configurações de Notícias",
		KeyInterfaceSettings: "Configurações de Interface",
		KeyCountry:           "País",
		KeyPageSize:          "Manchetes por busca",
		KeyRequestTimeout:    "Tempo limite da requisição (segundos)",
		KeyRefreshSchedule:   "Agenda de atualização (cron, vazio para desativar)",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
	}
}
