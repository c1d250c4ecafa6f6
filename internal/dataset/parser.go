package dataset

import (
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/puzzleboard/stats-api/internal/models"
)

// Parser scrapes play records out of chat-export text. Each message opens
// with "<name> sent the following message" and carries one puzzle result
// line ("Zip #166 | 0:42", "Pinpoint #487 | 3 guesses", ...). This is a
// heuristic scraper: anything that does not match is dropped, not an error.
type Parser struct {
	catalog Catalog
	logger  *zap.SugaredLogger
}

func NewParser(catalog Catalog, logger *zap.Logger) *Parser {
	return &Parser{catalog: catalog, logger: logger.Sugar()}
}

var headerRe = regexp.MustCompile(`^(.+?)\s+sent the following message`)

// gamePattern order matters: the first matching pattern claims the message.
type gamePattern struct {
	game string
	re   *regexp.Regexp
}

var gamePatterns = []gamePattern{
	{"zip", regexp.MustCompile(`(?i)Zip #(\d+)\s*\|\s*([\d:]+)(?:\s*and flawless)?`)},
	{"tango", regexp.MustCompile(`(?i)Tango #(\d+)\s*\|\s*([\d:]+)(?:\s*and flawless)?`)},
	{"queens", regexp.MustCompile(`(?i)Queens #(\d+)\s*\|\s*([\d:]+)(?:\s*and flawless)?`)},
	{"minisudoku", regexp.MustCompile(`(?i)Mini Sudoku #(\d+)\s*\|\s*([\d:]+)(?:\s*and flawless)?`)},
	{"pinpoint", regexp.MustCompile(`(?i)Pinpoint #(\d+)(?:\s*\|\s*(\d+)\s*guesses?)?`)},
	{"crossclimb", regexp.MustCompile(`(?i)Crossclimb #(\d+)\s*\|\s*([\d:]+)(?:\s*and flawless)?`)},
}

var backtracksRe = regexp.MustCompile(`(?i)With (\d+) backtracks?`)

// ParseText segments raw export text into messages on the sender header and
// parses the batch.
func (p *Parser) ParseText(text string) *models.Dataset {
	var messages []string
	var current []string

	flush := func() {
		if len(current) > 0 {
			messages = append(messages, strings.Join(current, "\n"))
			current = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if headerRe.MatchString(line) {
			flush()
		}
		current = append(current, line)
	}
	flush()

	return p.ParseBatch(messages)
}

// ParseBatch parses a batch of messages into a fresh dataset. Players and
// game configurations are created implicitly the first time an entry
// references them, so the result always passes Validate.
func (p *Parser) ParseBatch(messages []string) *models.Dataset {
	players := map[string]string{}
	games := map[string]models.Game{}
	entries := []models.Entry{}

	for i, message := range messages {
		entry, playerName, ok := p.parseMessage(strings.TrimSpace(message))
		if !ok {
			p.logger.Debugw("message did not parse", "index", i)
			continue
		}

		entries = append(entries, entry)
		if _, exists := players[entry.PlayerID]; !exists {
			players[entry.PlayerID] = playerName
		}
		if _, exists := games[entry.Game]; !exists {
			games[entry.Game] = p.catalog.Game(entry.Game)
		}
	}

	return FromDocument(players, games, entries)
}

// parseMessage extracts one play record from one message.
func (p *Parser) parseMessage(message string) (models.Entry, string, bool) {
	if message == "" {
		return models.Entry{}, "", false
	}

	header := headerRe.FindStringSubmatch(message)
	if header == nil {
		return models.Entry{}, "", false
	}
	playerName := strings.TrimSpace(header[1])

	for _, pattern := range gamePatterns {
		match := pattern.re.FindStringSubmatch(message)
		if match == nil {
			continue
		}

		gameNum, _ := strconv.Atoi(match[1])
		entry := models.Entry{
			PlayerID: NormalizePlayerID(playerName),
			Game:     pattern.game,
			GameNum:  gameNum,
			Date:     p.catalog.DateForGameNum(pattern.game, gameNum),
		}

		if pattern.game == "pinpoint" {
			// Pinpoint messages sometimes omit the guess count.
			if match[2] != "" {
				guesses, _ := strconv.Atoi(match[2])
				entry.Metrics.Guesses = &guesses
			}
		} else {
			seconds := ParseClock(match[2])
			entry.Metrics.Time = &seconds
		}

		if pattern.game == "zip" {
			if bt := backtracksRe.FindStringSubmatch(message); bt != nil {
				backtracks, _ := strconv.Atoi(bt[1])
				entry.Metrics.Backtracks = &backtracks
			} else if strings.Contains(message, "no backtracks") {
				zero := 0
				entry.Metrics.Backtracks = &zero
			}
		}

		return entry, playerName, true
	}

	return models.Entry{}, "", false
}

var nonAlnumRe = regexp.MustCompile(`[^a-z0-9\s]`)
var spaceRe = regexp.MustCompile(`\s+`)

// NormalizePlayerID derives a stable player id from a display name:
// lowercase with everything but letters and digits stripped.
func NormalizePlayerID(playerName string) string {
	id := strings.ToLower(playerName)
	id = nonAlnumRe.ReplaceAllString(id, "")
	id = spaceRe.ReplaceAllString(id, "")
	return strings.TrimSpace(id)
}

// ParseClock converts an "m:ss" clock string to seconds. Anything else
// parses as 0.
func ParseClock(clock string) int {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0
	}
	minutes, err1 := strconv.Atoi(parts[0])
	seconds, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 0
	}
	return minutes*60 + seconds
}
