package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// UserAgent identifies the HTTP client.
var UserAgent = "Birthday-Board/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName  = "Birthday Board"
	AppID    = "com.github.tartampluch.birthday-board"
	BindAddr = "0.0.0.0"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermDefault represents -rw-r--r-- (world-readable rendered boards).
	FilePermDefault fs.FileMode = 0644

	// DirPermDefault represents drwxr-xr-x for the output directory.
	DirPermDefault fs.FileMode = 0755

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Environment Variables & Defaults
// -----------------------------------------------------------------------------

const (
	EnvPort          = "PORT"
	EnvRosterMode    = "ROSTER_MODE"
	EnvRosterSource  = "ROSTER_SOURCE"
	EnvRosterUser    = "ROSTER_USER"
	EnvRosterPass    = "ROSTER_PASS"
	EnvPhotoBaseURL  = "PHOTO_BASE_URL"
	EnvPhotoDir      = "PHOTO_DIR"
	EnvAssetDir      = "ASSET_DIR"
	EnvOutputDir     = "OUTPUT_DIR"
	EnvPublicBaseURL = "PUBLIC_BASE_URL"
	EnvSlackWebhook  = "SLACK_WEBHOOK_URL"
	EnvLanguage      = "BOARD_LANGUAGE"

	DefaultPort      = "8080"
	DefaultAssetDir  = "assets"
	DefaultOutputDir = "out"
	DefaultPhotoDir  = "photos"
	DefaultLanguage  = "en"
)

// SupportedLanguages defines the list of available notification languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// Roster Sources & Formats
// -----------------------------------------------------------------------------

const (
	SourceModeWeb    = "url"
	SourceModeLocal  = "local"
	SourceModeInline = "inline"

	// CSV column order: firstName,lastName,birthDay,birthMonth,photoName
	CSVFieldCount     = 5
	CSVHeaderFirstCol = "firstname"

	ExtVCF   = ".vcf"
	ExtVCard = ".vcard"
	ExtCSV   = ".csv"
)

// -----------------------------------------------------------------------------
// Date Windows & Birthday Logic
// -----------------------------------------------------------------------------

const (
	// WindowDays is the fixed length of the reported week.
	WindowDays = 7

	// Date layouts used for parsing vCard BDAY fields.
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatNoYearD   = "--01-02"
	DateFormatNoYearB   = "--0102"

	// DefaultLeapYear is the fallback year for dates like --02-29.
	DefaultLeapYear = 2000
)

// -----------------------------------------------------------------------------
// Photo Resolution
// -----------------------------------------------------------------------------

const (
	// FallbackPhotoName is retried through the resolver chain when a
	// celebrant's own photo name resolves to nothing.
	FallbackPhotoName = "user.png"

	SchemeHTTP  = "http"
	SchemeHTTPS = "https"
)

// -----------------------------------------------------------------------------
// Canvas Geometry
// -----------------------------------------------------------------------------

const (
	CanvasWidth  = 1240
	CanvasHeight = 1500

	// RowCapacity is the fixed number of celebrants per grid row.
	RowCapacity = 4

	// RowOriginSingle applies when the whole board fits in one row;
	// RowOriginMulti applies otherwise. The split is a visual-balance
	// rule carried over from the original layout.
	RowOriginSingle = 480.0
	RowOriginMulti  = 560.0
	RowPitch        = 330.0

	PhotoRadius = 110.0

	// Day bubble sits on the top edge of the photo circle.
	BubbleSize  = 76
	NameOffsetY = 46.0

	BadgeCenterX      = CanvasWidth / 2.0
	BadgeCenterY      = 170.0
	BadgeAngleDegrees = -6.0
	BadgePaddingX     = 48.0
	BadgePaddingY     = 28.0
	BadgeCornerRadius = 18.0

	FontSizeBadge = 44.0
	FontSizeName  = 30.0
	FontSizeDay   = 26.0

	// FormatBadgeText expects start month name, start day, end month name, end day.
	FormatBadgeText = "%s %d to %s %d"
	FormatDayBubble = "%02d"
)

// -----------------------------------------------------------------------------
// Asset Files
// -----------------------------------------------------------------------------

const (
	AssetBackground = "background.png"
	AssetBubble     = "bubble.png"
	AssetFontReg    = "font-regular.ttf"
	AssetFontBold   = "font-bold.ttf"
)

// -----------------------------------------------------------------------------
// iCalendar Feed
// -----------------------------------------------------------------------------

const (
	ICalVersion = "2.0"
	ICalProdid  = "-//Birthday Board//Engine//EN"
	ICalCalName = "Team Birthdays"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "birthdayboard"

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	UIDSalt         = "birthday-board-v1-"
	UIDHashLength   = 16
	FormatHashInput = "%s|%02d-%02d|%s"
	FormatUID       = "%s@%s"
	FormatSummary   = "Birthday: %s"

	// StubVCalendar is the minimal valid iCalendar object used when the
	// roster yields no events, so feed clients never see an invalid body.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	HTTPTimeout         = 30 * time.Second
	ShutdownTimeout     = 5 * time.Second
	ServerReadTimeout   = 10 * time.Second
	ServerWriteTimeout  = 60 * time.Second
	ServerIdleTimeout   = 60 * time.Second
	NotifyTimeout       = 10 * time.Second
	AllowedMethods      = "GET, HEAD"
	MaxHTTPResponseSize = 32 * 1024 * 1024 // 32MB per roster or photo download
	AddrSeparator       = ":"
)

// -----------------------------------------------------------------------------
// Routes
// -----------------------------------------------------------------------------

const (
	RouteHealth   = "/health"
	RouteGenerate = "/api/board"
	RouteBoard    = "/board.png"
	RouteCalendar = "/calendar.ics"
	RouteFiles    = "/files"

	QueryDay   = "day"
	QueryMonth = "month"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderUserAgent       = "User-Agent"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"

	MimePNG             = "image/png"
	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"
	RetryAfterSeconds   = "10"

	// FormatETag expects a hex digest string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// JSON Response Fields
// -----------------------------------------------------------------------------

const (
	FieldStatus     = "status"
	FieldError      = "error"
	FieldStart      = "start"
	FieldEnd        = "end"
	FieldCelebrants = "celebrants"
	FieldURL        = "url"
	FieldSkipped    = "skipped_photos"

	StatusOK = "ok"

	// DateFormatResponse is used for the window boundaries in JSON replies.
	DateFormatResponse = "2006-01-02"

	// FormatBoardObject names stored board images; expects a UUID string.
	FormatBoardObject = "board-%s.png"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrRosterSourceEmpty = "configuration error: roster source is empty"
	ErrModeUnsupport     = "configuration error: unsupported roster mode"
	ErrLangUnsupported   = "configuration error: unsupported language"
	ErrServerStartup     = "server startup failed"
	ErrServerShutdown    = "server shutdown failed"
	ErrPortRequired      = "server port is required"
	ErrInvalidURL        = "invalid URL structure"
	ErrProtocol          = "unsupported protocol scheme (http/https only)"
	ErrRosterLoad        = "failed to load roster"
	ErrRosterParse       = "failed to parse roster"
	ErrInvalidDate       = "invalid reference date"
	ErrAssetLoad         = "failed to load render asset"
	ErrFontLoad          = "failed to load font face"
	ErrPhotoDecode       = "failed to decode photo"
	ErrPNGEncode         = "failed to encode board PNG"
	ErrICalEncode        = "failed to encode iCalendar data"
	ErrSinkStore         = "failed to store rendered board"
	ErrNotify            = "notification delivery failed"
	ErrAppFailed         = "application failed unexpectedly"
	ErrWriteResp         = "failed to write response body"
	ErrLocalesAccess     = "failed to access embedded locales"
	ErrLocaleLoad        = "failed to load locale file"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "Board not generated yet, trigger a render first."
	HTTPMsgMethodNotAll = "Method Not Allowed"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting   = "Starting application"
	MsgAppStop       = "Application stopped gracefully"
	MsgServerListen  = "HTTP server listening"
	MsgServerStop    = "Shutting down HTTP server..."
	MsgRenderStarted = "Board render started"
	MsgRenderDone    = "Board render successful"
	MsgPhotoSkipped  = "Celebrant photo skipped"
	MsgFontFallback  = "Configured fonts unavailable, using substitute face"
	MsgSkippedRow    = "Skipping malformed roster row"
	MsgSkippedCard   = "Skipping malformed vCard"
	MsgSkippedDate   = "Skipping invalid date format"
	MsgBoardStored   = "Board stored"
	MsgBoardCached   = "Board cache updated"
	MsgFeedCached    = "Calendar cache updated"
	MsgNotifySent    = "Notification sent"
	MsgEnvMissing    = "No .env file found, relying on process environment"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyNotifWeek = "notif_week"
	TKeyNotifNone = "notif_week_none"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyURL       = "url"
	LogKeyStatus    = "status_code"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyPort      = "port"
	LogKeyMode      = "mode"
	LogKeyName      = "name"
	LogKeyReason    = "reason"
	LogKeyCount     = "count"
	LogKeyTotal     = "roster_total"
	LogKeyFound     = "celebrants_found"
	LogKeySkipped   = "photos_skipped"
	LogKeyWindow    = "window_start"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyDuration  = "duration_ms"
	LogKeyStats     = "stats"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompMain    = "main"
	CompEngine  = "engine"
	CompRender  = "render"
	CompRoster  = "roster"
	CompServer  = "server"
	CompFetcher = "fetcher"
	CompStorage = "storage"
	CompNotify  = "notify"
	CompI18n    = "i18n"
)
