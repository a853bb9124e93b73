package generate

import (
	"fmt"
	"strconv"

	"erdb/internal/gamedata"
)

const correctionStages = 5

func correctionGraphFields() []string {
	var fields []string
	for i := 0; i < correctionStages; i++ {
		fields = append(fields,
			fmt.Sprintf("stageMaxVal%d", i),
			fmt.Sprintf("stageMaxGrowVal%d", i),
			fmt.Sprintf("adjPtMaxGrowVal%d", i),
		)
	}
	return fields
}

type correctionGraphGenerator struct {
	base
	table *gamedata.Table
}

func newCorrectionGraph(src *gamedata.Source) (Generator, error) {
	table, err := src.Table(CorrectionGraph.Stem())
	if err != nil {
		return nil, err
	}
	if err := table.LookupFields(correctionGraphFields()...); err != nil {
		return nil, err
	}
	return &correctionGraphGenerator{base: base{category: CorrectionGraph}, table: table}, nil
}

func (g *correctionGraphGenerator) Rows() []gamedata.Row {
	return g.table.Rows()
}

func (g *correctionGraphGenerator) KeyName(row gamedata.Row) string {
	return strconv.Itoa(row.ID)
}

func (g *correctionGraphGenerator) Construct(row gamedata.Row) map[string]any {
	stages := make([]any, 0, correctionStages)
	for i := 0; i < correctionStages; i++ {
		stages = append(stages, map[string]any{
			"threshold":   row.Float(fmt.Sprintf("stageMaxVal%d", i)),
			"coefficient": row.Float(fmt.Sprintf("stageMaxGrowVal%d", i)),
			"adjustment":  row.Float(fmt.Sprintf("adjPtMaxGrowVal%d", i)),
		})
	}

	return map[string]any{
		"id":     row.ID,
		"stages": stages,
	}
}
