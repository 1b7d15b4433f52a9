package useragent

import (
	"strings"

	"github.com/avc-dev/shortlink/internal/model"
	"github.com/ua-parser/uap-go/uaparser"
	"go.uber.org/zap"
)

const (
	DeviceDesktop = "desktop"
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
	DeviceBot     = "bot"
	DeviceUnknown = "unknown"
)

var (
	botIndicators  = []string{"bot", "crawler", "spider", "slurp", "facebookexternalhit", "preview"}
	tabletFamilies = []string{"ipad", "tablet", "kindle", "surface"}
	mobileFamilies = []string{"iphone", "android", "phone", "mobile", "blackberry"}
	mobileOS       = []string{"ios", "android", "windows phone", "blackberry os"}
	desktopOS      = []string{"windows", "mac os x", "linux", "ubuntu", "chrome os", "fedora"}
)

// Parser определяет устройство, браузер и ОС по заголовку User-Agent
type Parser struct {
	parser *uaparser.Parser
	log    *zap.Logger
}

// NewParser создает парсер на встроенном наборе регулярных выражений uap-core
func NewParser(log *zap.Logger) *Parser {
	return &Parser{
		parser: uaparser.NewFromSaved(),
		log:    log,
	}
}

// Detect возвращает пустой DeviceInfo для пустого User-Agent
func (p *Parser) Detect(userAgent string) model.DeviceInfo {
	if strings.TrimSpace(userAgent) == "" {
		return model.DeviceInfo{}
	}

	client := p.parser.Parse(userAgent)

	info := model.DeviceInfo{
		DeviceType: deviceType(client, userAgent),
		Browser:    family(client.UserAgent.Family),
		OS:         family(client.Os.Family),
	}

	p.log.Debug("parsed User-Agent",
		zap.String("user_agent", userAgent),
		zap.String("device_type", info.DeviceType),
		zap.String("browser", info.Browser),
		zap.String("os", info.OS),
	)

	return info
}

func deviceType(client *uaparser.Client, userAgent string) string {
	if containsAny(client.UserAgent.Family, botIndicators) || containsAny(userAgent, botIndicators) ||
		strings.EqualFold(client.Device.Family, "Spider") {
		return DeviceBot
	}

	deviceFamily := client.Device.Family
	if deviceFamily != "" && deviceFamily != "Other" {
		if containsAny(deviceFamily, tabletFamilies) {
			return DeviceTablet
		}
		if containsAny(deviceFamily, mobileFamilies) {
			return DeviceMobile
		}
	}

	osFamily := client.Os.Family
	if containsAny(osFamily, mobileOS) {
		if containsAny(userAgent, tabletFamilies) {
			return DeviceTablet
		}
		return DeviceMobile
	}

	if containsAny(osFamily, desktopOS) {
		return DeviceDesktop
	}

	return DeviceUnknown
}

func family(value string) string {
	if value == "" || value == "Other" {
		return DeviceUnknown
	}
	return value
}

func containsAny(value string, needles []string) bool {
	lower := strings.ToLower(value)
	for _, needle := range needles {
		if strings.Contains(lower, needle) {
			return true
		}
	}
	return false
}
