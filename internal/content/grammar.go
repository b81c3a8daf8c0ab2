package content

import "github.com/example/n5bot/pkg/models"

// GrammarPoints loads the N5 grammar points from grammar_n5.json
func (l *Library) GrammarPoints() []models.GrammarPoint {
	var points []models.GrammarPoint
	readJSONFile(l.path(GrammarJSONFile), &points)
	return points
}

// SaveGrammarPoints rewrites grammar_n5.json with the full list
func (l *Library) SaveGrammarPoints(points []models.GrammarPoint) error {
	return writeJSONFile(l.path(GrammarJSONFile), points)
}
