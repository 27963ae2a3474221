package configfile

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/vtaptools/vtapcfg/models"
)

// ErrMissingHeader is returned by [Parse] when the first non-blank line of a
// document is not the literal header. It aborts the whole parse; nothing
// else does.
var ErrMissingHeader = errors.New(`config must start with "` + Header + `" header`)

// Recognized line patterns. Keys are case-sensitive; multi-instance sections
// carry a 1-based numeric slot suffix captured as the first group. Lines
// matching none of these are silently ignored so configs written by newer
// firmware keep parsing.
var (
	reVASMerchantID    = regexp.MustCompile(`^VAS(\d+)MerchantID=(.+)$`)
	reVASKeySlot       = regexp.MustCompile(`^VAS(\d+)KeySlot=(\d+)$`)
	reVASMerchantURL   = regexp.MustCompile(`^VAS(\d+)MerchantURL=(.+)$`)
	reVASDefaultPasses = regexp.MustCompile(`^VASDefaultPassesEnabled=(\d+(?:,\d+)*)$`)

	reSTCollectorID   = regexp.MustCompile(`^ST(\d+)CollectorID=(.+)$`)
	reSTKeySlot       = regexp.MustCompile(`^ST(\d+)KeySlot=(\d+)$`)
	reSTKeyVersion    = regexp.MustCompile(`^ST(\d+)KeyVersion=(\d+)$`)
	reSTDefaultPasses = regexp.MustCompile(`^STDefaultPassesEnabled=(\d+(?:,\d+)*)$`)

	reKBLogMode       = regexp.MustCompile(`^KBLogMode=(\d+)$`)
	reKBEnable        = regexp.MustCompile(`^KBEnable=(\d+)$`)
	reKBSource        = regexp.MustCompile(`^KBSource=(.+)$`)
	reKBPrefix        = regexp.MustCompile(`^KBPrefix=(.+)$`)
	reKBPostfix       = regexp.MustCompile(`^KBPostfix=(.+)$`)
	reKBDelayMS       = regexp.MustCompile(`^KBDelayMS=(\d+)$`)
	reKBPassMode      = regexp.MustCompile(`^KBPassMode=(\d+)$`)
	reKBPassSection   = regexp.MustCompile(`^KBPassSection=(\d+)$`)
	reKBPassSeparator = regexp.MustCompile(`^KBPassSeparator=(.+)$`)
	reKBPassStart     = regexp.MustCompile(`^KBPassStart=(\d+)$`)
	reKBPassLength    = regexp.MustCompile(`^KBPassLength=(\d+)$`)

	reNFCType2          = regexp.MustCompile(`^NFCType2=([0UNBD])$`)
	reNFCType4          = regexp.MustCompile(`^NFCType4=([0UNBD])$`)
	reNFCType5          = regexp.MustCompile(`^NFCType5=([0UNBD])$`)
	reNFCReportReadErr  = regexp.MustCompile(`^NFCReportReadError=(\d+)$`)
	reIgnoreRandomUID   = regexp.MustCompile(`^IgnoreRandomUID=(\d+)$`)
	reTagByteOrder      = regexp.MustCompile(`^TagByteOrder=(\d+)$`)
	reTagReadBlockNum   = regexp.MustCompile(`^TagReadBlockNum=(\d+)$`)
	reTagReadKeySlot    = regexp.MustCompile(`^TagReadKeySlot=(\d+)$`)
	reTagReadKeyType    = regexp.MustCompile(`^TagReadKeyType=([ABC])$`)
	reTagReadOffset     = regexp.MustCompile(`^TagReadOffset=(\d+)$`)
	reTagReadLength     = regexp.MustCompile(`^TagReadLength=(\d+)$`)
	reTagReadFormat     = regexp.MustCompile(`^TagReadFormat=([adh])$`)
	reTagReadMinDigits  = regexp.MustCompile(`^TagReadMinDigits=(\d+|A)$`)

	reDFAppID           = regexp.MustCompile(`^DESFire(\d+)AppID=([A-Fa-f0-9]{6})$`)
	reDFFileID          = regexp.MustCompile(`^DESFire(\d+)FileID=(\d+)$`)
	reDFKeyNum          = regexp.MustCompile(`^DESFire(\d+)KeyNum=(\d+)$`)
	reDFKeySlot         = regexp.MustCompile(`^DESFire(\d+)KeySlot=(\d+)$`)
	reDFCrypto          = regexp.MustCompile(`^DESFire(\d+)Crypto=(\d+)$`)
	reDFFormat          = regexp.MustCompile(`^DESFire(\d+)Format=(\d+)$`)
	reDFReadLength      = regexp.MustCompile(`^DESFire(\d+)ReadLength=(\d+)$`)
	reDFReadOffset      = regexp.MustCompile(`^DESFire(\d+)ReadOffset=(\d+)$`)
	reDFDiversification = regexp.MustCompile(`^DESFire(\d+)Diversification=(\d+)$`)
	reDFPrivacyKeyNum   = regexp.MustCompile(`^DESFire(\d+)PrivacyKeyNum=(\d+)$`)
	reDFPrivacyKeySlot  = regexp.MustCompile(`^DESFire(\d+)PrivacyKeySlot=(\d+)$`)
	reDFSysIDKeySlot    = regexp.MustCompile(`^DESFire(\d+)SysIDKeySlot=(\d+)$`)
	reDFSysIDLength     = regexp.MustCompile(`^DESFire(\d+)SysIDLength=(\d+)$`)
	reDFSeparator       = regexp.MustCompile(`^DESFireSeparator=(.+)$`)

	reLEDMode       = regexp.MustCompile(`^LEDMode=(\d+)$`)
	reLEDSelect     = regexp.MustCompile(`^LEDSelect=(\d+)$`)
	reLEDDefaultRGB = regexp.MustCompile(`^LEDDefaultRGB=([A-Fa-f0-9]{6})$`)
	rePassLED       = regexp.MustCompile(`^PassLED=(.+)$`)
	reTagLED        = regexp.MustCompile(`^TagLED=(.+)$`)
	rePassErrorLED  = regexp.MustCompile(`^PassErrorLED=(.+)$`)
	reStartLED      = regexp.MustCompile(`^StartLED=(.+)$`)

	rePassBeep      = regexp.MustCompile(`^PassBeep=(.+)$`)
	reTagBeep       = regexp.MustCompile(`^TagBeep=(.+)$`)
	rePassErrorBeep = regexp.MustCompile(`^PassErrorBeep=(.+)$`)
	reStartBeep     = regexp.MustCompile(`^StartBeep=(.+)$`)
)

// Per-slot draft records. A logical entry's fields arrive on scattered
// lines, so the line scan accumulates into drafts keyed by slot index;
// promotion into typed models happens once the stream is exhausted, in
// ascending slot order. A draft missing its primary identifying field is
// dropped, not defaulted.

type vasDraft struct {
	merchantID  string
	keySlot     int
	merchantURL string
}

type stDraft struct {
	collectorID string
	keySlot     int
	keyVersion  int
}

type kbDraft struct {
	logMode       *bool
	enable        *bool
	source        *string
	prefix        *string
	postfix       *string
	delayMS       *int
	passMode      *bool
	passSection   *int
	passSeparator *string
	passStart     *int
	passLength    *int
}

func (d *kbDraft) observed() bool {
	return d.logMode != nil || d.enable != nil || d.source != nil ||
		d.prefix != nil || d.postfix != nil || d.delayMS != nil ||
		d.passMode != nil || d.passSection != nil || d.passSeparator != nil ||
		d.passStart != nil || d.passLength != nil
}

type nfcDraft struct {
	type2, type4, type5 string

	reportReadError   bool
	ignoreRandomUID   bool
	byteOrderReversed bool

	blockNum  *int
	keySlot   *int
	keyType   string
	offset    int
	length    *int
	format    string
	minDigits string
}

func (d *nfcDraft) observed() bool {
	return d.type2 != "" || d.type4 != "" || d.type5 != "" ||
		d.reportReadError || d.ignoreRandomUID || d.byteOrderReversed ||
		d.tagReadObserved()
}

func (d *nfcDraft) tagReadObserved() bool {
	return d.blockNum != nil || d.keySlot != nil || d.keyType != "" ||
		d.length != nil || d.format != "" || d.minDigits != ""
}

type dfAppDraft struct {
	appID           string
	fileID          *int
	keyNum          *int
	keySlot         *int
	crypto          *int
	format          *int
	readLength      int
	readOffset      int
	diversification *bool
	privacyKeyNum   *int
	privacyKeySlot  *int
	sysIDKeySlot    *int
	sysIDLength     *int
}

type ledDraft struct {
	mode       *int
	sel        *int
	defaultRGB string

	pass, tag, passError, start *string
}

func (d *ledDraft) observed() bool {
	return d.mode != nil || d.sel != nil || d.defaultRGB != "" ||
		d.pass != nil || d.tag != nil || d.passError != nil || d.start != nil
}

type beepDraft struct {
	pass, tag, passError, start *string
}

func (d *beepDraft) observed() bool {
	return d.pass != nil || d.tag != nil || d.passError != nil || d.start != nil
}

type parser struct {
	vas        map[int]*vasDraft
	vasDefault []int

	st        map[int]*stDraft
	stDefault []int

	kb  kbDraft
	nfc nfcDraft

	df          map[int]*dfAppDraft
	dfSeparator string

	led  ledDraft
	beep beepDraft
}

func newParser() *parser {
	return &parser{
		vas:         make(map[int]*vasDraft),
		st:          make(map[int]*stDraft),
		df:          make(map[int]*dfAppDraft),
		dfSeparator: models.DefaultDESFireSeparator,
	}
}

// Parse recovers a [models.Config] from config.txt content. The first
// non-blank line must be the literal header ([ErrMissingHeader] otherwise);
// blank lines and ";" comments are skipped; unrecognized Key=Value lines are
// silently ignored. Validation errors from promoting drafts into typed
// models propagate unchanged.
func Parse(content string) (*models.Config, error) {
	trimmed := strings.TrimSpace(content)
	lines := strings.Split(trimmed, "\n")

	if trimmed == "" || !strings.HasPrefix(strings.TrimSpace(lines[0]), Header) {
		return nil, ErrMissingHeader
	}

	p := newParser()
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		p.parseLine(line)
	}

	return p.build()
}

func (p *parser) parseLine(line string) {
	if p.parseVASLine(line) {
		return
	}
	if p.parseSmartTapLine(line) {
		return
	}
	if p.parseKeyboardLine(line) {
		return
	}
	if p.parseNFCLine(line) {
		return
	}
	if p.parseDESFireLine(line) {
		return
	}
	if p.parseLEDLine(line) {
		return
	}
	p.parseBeepLine(line)
}

func (p *parser) parseVASLine(line string) bool {
	if m := reVASMerchantID.FindStringSubmatch(line); m != nil {
		p.vasAt(atoi(m[1])).merchantID = m[2]
		return true
	}
	if m := reVASKeySlot.FindStringSubmatch(line); m != nil {
		p.vasAt(atoi(m[1])).keySlot = atoi(m[2])
		return true
	}
	if m := reVASMerchantURL.FindStringSubmatch(line); m != nil {
		p.vasAt(atoi(m[1])).merchantURL = m[2]
		return true
	}
	if m := reVASDefaultPasses.FindStringSubmatch(line); m != nil {
		p.vasDefault = parseIntList(m[1])
		return true
	}
	return false
}

func (p *parser) parseSmartTapLine(line string) bool {
	if m := reSTCollectorID.FindStringSubmatch(line); m != nil {
		p.stAt(atoi(m[1])).collectorID = m[2]
		return true
	}
	if m := reSTKeySlot.FindStringSubmatch(line); m != nil {
		p.stAt(atoi(m[1])).keySlot = atoi(m[2])
		return true
	}
	if m := reSTKeyVersion.FindStringSubmatch(line); m != nil {
		p.stAt(atoi(m[1])).keyVersion = atoi(m[2])
		return true
	}
	if m := reSTDefaultPasses.FindStringSubmatch(line); m != nil {
		p.stDefault = parseIntList(m[1])
		return true
	}
	return false
}

func (p *parser) parseKeyboardLine(line string) bool {
	if m := reKBLogMode.FindStringSubmatch(line); m != nil {
		p.kb.logMode = boolPtr(m[1] == "1")
		return true
	}
	if m := reKBEnable.FindStringSubmatch(line); m != nil {
		p.kb.enable = boolPtr(m[1] == "1")
		return true
	}
	if m := reKBSource.FindStringSubmatch(line); m != nil {
		p.kb.source = strPtr(m[1])
		return true
	}
	if m := reKBPrefix.FindStringSubmatch(line); m != nil {
		p.kb.prefix = strPtr(m[1])
		return true
	}
	if m := reKBPostfix.FindStringSubmatch(line); m != nil {
		p.kb.postfix = strPtr(m[1])
		return true
	}
	if m := reKBDelayMS.FindStringSubmatch(line); m != nil {
		p.kb.delayMS = intPtr(atoi(m[1]))
		return true
	}
	if m := reKBPassMode.FindStringSubmatch(line); m != nil {
		p.kb.passMode = boolPtr(m[1] == "1")
		return true
	}
	if m := reKBPassSection.FindStringSubmatch(line); m != nil {
		p.kb.passSection = intPtr(atoi(m[1]))
		return true
	}
	if m := reKBPassSeparator.FindStringSubmatch(line); m != nil {
		p.kb.passSeparator = strPtr(m[1])
		return true
	}
	if m := reKBPassStart.FindStringSubmatch(line); m != nil {
		p.kb.passStart = intPtr(atoi(m[1]))
		return true
	}
	if m := reKBPassLength.FindStringSubmatch(line); m != nil {
		p.kb.passLength = intPtr(atoi(m[1]))
		return true
	}
	return false
}

func (p *parser) parseNFCLine(line string) bool {
	if m := reNFCType2.FindStringSubmatch(line); m != nil {
		p.nfc.type2 = m[1]
		return true
	}
	if m := reNFCType4.FindStringSubmatch(line); m != nil {
		p.nfc.type4 = m[1]
		return true
	}
	if m := reNFCType5.FindStringSubmatch(line); m != nil {
		p.nfc.type5 = m[1]
		return true
	}
	if m := reNFCReportReadErr.FindStringSubmatch(line); m != nil {
		p.nfc.reportReadError = m[1] == "1"
		return true
	}
	if m := reIgnoreRandomUID.FindStringSubmatch(line); m != nil {
		p.nfc.ignoreRandomUID = m[1] == "1"
		return true
	}
	if m := reTagByteOrder.FindStringSubmatch(line); m != nil {
		p.nfc.byteOrderReversed = m[1] == "1"
		return true
	}
	if m := reTagReadBlockNum.FindStringSubmatch(line); m != nil {
		p.nfc.blockNum = intPtr(atoi(m[1]))
		return true
	}
	if m := reTagReadKeySlot.FindStringSubmatch(line); m != nil {
		p.nfc.keySlot = intPtr(atoi(m[1]))
		return true
	}
	if m := reTagReadKeyType.FindStringSubmatch(line); m != nil {
		p.nfc.keyType = m[1]
		return true
	}
	if m := reTagReadOffset.FindStringSubmatch(line); m != nil {
		p.nfc.offset = atoi(m[1])
		return true
	}
	if m := reTagReadLength.FindStringSubmatch(line); m != nil {
		p.nfc.length = intPtr(atoi(m[1]))
		return true
	}
	if m := reTagReadFormat.FindStringSubmatch(line); m != nil {
		p.nfc.format = m[1]
		return true
	}
	if m := reTagReadMinDigits.FindStringSubmatch(line); m != nil {
		p.nfc.minDigits = m[1]
		return true
	}
	return false
}

func (p *parser) parseDESFireLine(line string) bool {
	if m := reDFAppID.FindStringSubmatch(line); m != nil {
		p.dfAt(atoi(m[1])).appID = strings.ToUpper(m[2])
		return true
	}
	if m := reDFFileID.FindStringSubmatch(line); m != nil {
		p.dfAt(atoi(m[1])).fileID = intPtr(atoi(m[2]))
		return true
	}
	if m := reDFKeyNum.FindStringSubmatch(line); m != nil {
		p.dfAt(atoi(m[1])).keyNum = intPtr(atoi(m[2]))
		return true
	}
	if m := reDFKeySlot.FindStringSubmatch(line); m != nil {
		p.dfAt(atoi(m[1])).keySlot = intPtr(atoi(m[2]))
		return true
	}
	if m := reDFCrypto.FindStringSubmatch(line); m != nil {
		p.dfAt(atoi(m[1])).crypto = intPtr(atoi(m[2]))
		return true
	}
	if m := reDFFormat.FindStringSubmatch(line); m != nil {
		p.dfAt(atoi(m[1])).format = intPtr(atoi(m[2]))
		return true
	}
	if m := reDFReadLength.FindStringSubmatch(line); m != nil {
		p.dfAt(atoi(m[1])).readLength = atoi(m[2])
		return true
	}
	if m := reDFReadOffset.FindStringSubmatch(line); m != nil {
		p.dfAt(atoi(m[1])).readOffset = atoi(m[2])
		return true
	}
	if m := reDFDiversification.FindStringSubmatch(line); m != nil {
		p.dfAt(atoi(m[1])).diversification = boolPtr(m[2] == "1")
		return true
	}
	if m := reDFPrivacyKeyNum.FindStringSubmatch(line); m != nil {
		p.dfAt(atoi(m[1])).privacyKeyNum = intPtr(atoi(m[2]))
		return true
	}
	if m := reDFPrivacyKeySlot.FindStringSubmatch(line); m != nil {
		p.dfAt(atoi(m[1])).privacyKeySlot = intPtr(atoi(m[2]))
		return true
	}
	if m := reDFSysIDKeySlot.FindStringSubmatch(line); m != nil {
		p.dfAt(atoi(m[1])).sysIDKeySlot = intPtr(atoi(m[2]))
		return true
	}
	if m := reDFSysIDLength.FindStringSubmatch(line); m != nil {
		p.dfAt(atoi(m[1])).sysIDLength = intPtr(atoi(m[2]))
		return true
	}
	if m := reDFSeparator.FindStringSubmatch(line); m != nil {
		p.dfSeparator = m[1]
		return true
	}
	return false
}

func (p *parser) parseLEDLine(line string) bool {
	if m := reLEDMode.FindStringSubmatch(line); m != nil {
		p.led.mode = intPtr(atoi(m[1]))
		return true
	}
	if m := reLEDSelect.FindStringSubmatch(line); m != nil {
		p.led.sel = intPtr(atoi(m[1]))
		return true
	}
	if m := reLEDDefaultRGB.FindStringSubmatch(line); m != nil {
		p.led.defaultRGB = strings.ToUpper(m[1])
		return true
	}
	if m := rePassLED.FindStringSubmatch(line); m != nil {
		p.led.pass = strPtr(m[1])
		return true
	}
	if m := reTagLED.FindStringSubmatch(line); m != nil {
		p.led.tag = strPtr(m[1])
		return true
	}
	if m := rePassErrorLED.FindStringSubmatch(line); m != nil {
		p.led.passError = strPtr(m[1])
		return true
	}
	if m := reStartLED.FindStringSubmatch(line); m != nil {
		p.led.start = strPtr(m[1])
		return true
	}
	return false
}

func (p *parser) parseBeepLine(line string) bool {
	if m := rePassBeep.FindStringSubmatch(line); m != nil {
		p.beep.pass = strPtr(m[1])
		return true
	}
	if m := reTagBeep.FindStringSubmatch(line); m != nil {
		p.beep.tag = strPtr(m[1])
		return true
	}
	if m := rePassErrorBeep.FindStringSubmatch(line); m != nil {
		p.beep.passError = strPtr(m[1])
		return true
	}
	if m := reStartBeep.FindStringSubmatch(line); m != nil {
		p.beep.start = strPtr(m[1])
		return true
	}
	return false
}

func (p *parser) vasAt(slot int) *vasDraft {
	if _, ok := p.vas[slot]; !ok {
		p.vas[slot] = &vasDraft{}
	}
	return p.vas[slot]
}

func (p *parser) stAt(slot int) *stDraft {
	if _, ok := p.st[slot]; !ok {
		p.st[slot] = &stDraft{}
	}
	return p.st[slot]
}

func (p *parser) dfAt(slot int) *dfAppDraft {
	if _, ok := p.df[slot]; !ok {
		p.df[slot] = &dfAppDraft{readLength: models.DefaultDESFireReadLength}
	}
	return p.df[slot]
}

// build promotes all accumulated drafts into a validated aggregate.
func (p *parser) build() (*models.Config, error) {
	cfg := &models.Config{}

	for _, slot := range sortedKeys(p.vas) {
		d := p.vas[slot]
		if d.merchantID == "" {
			continue
		}
		v, err := models.NewAppleVAS(d.merchantID, d.keySlot, d.merchantURL)
		if err != nil {
			return nil, fmt.Errorf("VAS slot %d: %w", slot, err)
		}
		cfg.VAS = append(cfg.VAS, v)
	}
	if p.vasDefault != nil {
		dp, err := models.NewVASDefaultPasses(p.vasDefault)
		if err != nil {
			return nil, fmt.Errorf("VASDefaultPassesEnabled: %w", err)
		}
		cfg.VASDefaultPasses = &dp
	}

	for _, slot := range sortedKeys(p.st) {
		d := p.st[slot]
		if d.collectorID == "" {
			continue
		}
		st, err := models.NewGoogleSmartTap(d.collectorID, d.keySlot, d.keyVersion)
		if err != nil {
			return nil, fmt.Errorf("Smart Tap slot %d: %w", slot, err)
		}
		cfg.SmartTap = append(cfg.SmartTap, st)
	}
	if p.stDefault != nil {
		dp, err := models.NewSTDefaultPasses(p.stDefault)
		if err != nil {
			return nil, fmt.Errorf("STDefaultPassesEnabled: %w", err)
		}
		cfg.SmartTapDefaultPasses = &dp
	}

	if err := p.buildKeyboard(cfg); err != nil {
		return nil, err
	}
	if err := p.buildNFC(cfg); err != nil {
		return nil, err
	}
	p.buildDESFire(cfg)
	if err := p.buildFeedback(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (p *parser) buildKeyboard(cfg *models.Config) error {
	if !p.kb.observed() {
		return nil
	}

	k := models.DefaultKeyboard()
	if p.kb.logMode != nil {
		k.LogMode = *p.kb.logMode
	}
	if p.kb.enable != nil {
		k.Enable = *p.kb.enable
	}
	if p.kb.source != nil {
		k.Source = *p.kb.source
	}
	if p.kb.prefix != nil {
		k.Prefix = *p.kb.prefix
	}
	if p.kb.postfix != nil {
		k.Postfix = *p.kb.postfix
	}
	if p.kb.delayMS != nil {
		k.DelayMS = *p.kb.delayMS
	}
	if p.kb.passMode != nil {
		k.PassMode = *p.kb.passMode
	}
	if p.kb.passSection != nil {
		k.PassSection = *p.kb.passSection
	}
	if p.kb.passSeparator != nil {
		k.PassSeparator = *p.kb.passSeparator
	}
	if p.kb.passStart != nil {
		k.PassStart = *p.kb.passStart
	}
	if p.kb.passLength != nil {
		k.PassLength = *p.kb.passLength
	}

	if err := k.Validate(); err != nil {
		return fmt.Errorf("keyboard: %w", err)
	}
	cfg.Keyboard = &k
	return nil
}

func (p *parser) buildNFC(cfg *models.Config) error {
	if !p.nfc.observed() {
		return nil
	}

	var tagRead *models.TagRead
	if p.nfc.tagReadObserved() {
		tagRead = &models.TagRead{
			BlockNum:  p.nfc.blockNum,
			KeySlot:   p.nfc.keySlot,
			KeyType:   models.TagKeyType(p.nfc.keyType),
			Offset:    p.nfc.offset,
			Length:    p.nfc.length,
			Format:    models.TagReadFormat(p.nfc.format),
			MinDigits: p.nfc.minDigits,
		}
	}

	nfc := &models.NFCTag{
		Type2:             models.TagMode(p.nfc.type2),
		Type4:             models.TagMode(p.nfc.type4),
		Type5:             models.TagMode(p.nfc.type5),
		ReportReadError:   p.nfc.reportReadError,
		IgnoreRandomUID:   p.nfc.ignoreRandomUID,
		ByteOrderReversed: p.nfc.byteOrderReversed,
		TagRead:           tagRead,
	}
	if err := nfc.Validate(); err != nil {
		return fmt.Errorf("NFC: %w", err)
	}
	cfg.NFC = nfc
	return nil
}

func (p *parser) buildDESFire(cfg *models.Config) {
	if len(p.df) == 0 {
		return
	}

	var apps []models.DESFireApp
	for _, slot := range sortedKeys(p.df) {
		d := p.df[slot]
		if d.appID == "" {
			continue
		}
		app := models.DESFireApp{
			AppID:           d.appID,
			FileID:          d.fileID,
			KeyNum:          d.keyNum,
			KeySlot:         d.keySlot,
			ReadLength:      d.readLength,
			ReadOffset:      d.readOffset,
			Diversification: d.diversification,
			PrivacyKeyNum:   d.privacyKeyNum,
			PrivacyKeySlot:  d.privacyKeySlot,
			SysIDKeySlot:    d.sysIDKeySlot,
			SysIDLength:     d.sysIDLength,
		}
		if d.crypto != nil {
			crypto := models.CryptoMode(*d.crypto)
			app.Crypto = &crypto
		}
		if d.format != nil {
			format := models.DataFormat(*d.format)
			app.Format = &format
		}
		apps = append(apps, app)
	}
	if len(apps) == 0 {
		return
	}

	cfg.DESFire = &models.DESFire{Apps: apps, Separator: p.dfSeparator}
}

func (p *parser) buildFeedback(cfg *models.Config) error {
	var led *models.LED
	if p.led.observed() {
		pass, err := parseLEDSequence(p.led.pass)
		if err != nil {
			return fmt.Errorf("PassLED: %w", err)
		}
		tag, err := parseLEDSequence(p.led.tag)
		if err != nil {
			return fmt.Errorf("TagLED: %w", err)
		}
		passError, err := parseLEDSequence(p.led.passError)
		if err != nil {
			return fmt.Errorf("PassErrorLED: %w", err)
		}
		start, err := parseLEDSequence(p.led.start)
		if err != nil {
			return fmt.Errorf("StartLED: %w", err)
		}

		led = &models.LED{
			DefaultRGB: p.led.defaultRGB,
			Pass:       pass,
			Tag:        tag,
			PassError:  passError,
			Start:      start,
		}
		if p.led.mode != nil {
			mode := models.LEDMode(*p.led.mode)
			led.Mode = &mode
		}
		if p.led.sel != nil {
			sel := models.LEDSelect(*p.led.sel)
			led.Select = &sel
		}
	}

	var beep *models.Beep
	if p.beep.observed() {
		pass, err := parseBeepSequence(p.beep.pass)
		if err != nil {
			return fmt.Errorf("PassBeep: %w", err)
		}
		tag, err := parseBeepSequence(p.beep.tag)
		if err != nil {
			return fmt.Errorf("TagBeep: %w", err)
		}
		passError, err := parseBeepSequence(p.beep.passError)
		if err != nil {
			return fmt.Errorf("PassErrorBeep: %w", err)
		}
		start, err := parseBeepSequence(p.beep.start)
		if err != nil {
			return fmt.Errorf("StartBeep: %w", err)
		}

		beep = &models.Beep{Pass: pass, Tag: tag, PassError: passError, Start: start}
	}

	if led == nil && beep == nil {
		return nil
	}
	cfg.Feedback = &models.Feedback{LED: led, Beep: beep}
	return nil
}

// parseLEDSequence decodes "color,on_ms,off_ms,repeats". A value with the
// wrong number of fields is skipped (nil, nil); non-numeric timing fields
// are an error.
func parseLEDSequence(value *string) (*models.LEDSequence, error) {
	if value == nil {
		return nil, nil
	}

	parts := strings.Split(*value, ",")
	if len(parts) != 4 {
		return nil, nil
	}

	nums, err := atoiAll(parts[1:])
	if err != nil {
		return nil, err
	}
	return &models.LEDSequence{
		Color:   strings.ToUpper(parts[0]),
		OnMS:    nums[0],
		OffMS:   nums[1],
		Repeats: nums[2],
	}, nil
}

// parseBeepSequence decodes "on_ms,off_ms,repeats[,frequency]". A value with
// fewer than three fields is skipped (nil, nil); non-numeric fields are an
// error.
func parseBeepSequence(value *string) (*models.BeepSequence, error) {
	if value == nil {
		return nil, nil
	}

	parts := strings.Split(*value, ",")
	if len(parts) < 3 {
		return nil, nil
	}

	nums, err := atoiAll(parts[:3])
	if err != nil {
		return nil, err
	}
	seq := &models.BeepSequence{OnMS: nums[0], OffMS: nums[1], Repeats: nums[2]}

	if len(parts) >= 4 {
		freq, err := strconv.Atoi(parts[3])
		if err != nil {
			return nil, fmt.Errorf("invalid frequency %q", parts[3])
		}
		seq.Frequency = &freq
	}
	return seq, nil
}

// atoi converts a digits-only regex capture to int.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func atoiAll(parts []string) ([]int, error) {
	nums := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid numeric field %q", part)
		}
		nums[i] = n
	}
	return nums, nil
}

// parseIntList splits a "1,3,5" capture; the pattern guarantees well-formed
// comma-separated digits.
func parseIntList(s string) []int {
	parts := strings.Split(s, ",")
	nums := make([]int, len(parts))
	for i, part := range parts {
		nums[i] = atoi(part)
	}
	return nums
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func boolPtr(b bool) *bool { return &b }

func intPtr(n int) *int { return &n }

func strPtr(s string) *string { return &s }
