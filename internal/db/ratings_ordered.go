package db

import (
	"context"
	"fmt"
)

// rankableColumns are the elo_ratings columns that may appear in ORDER BY.
var rankableColumns = map[string]struct{}{
	"basic_elo":       {},
	"experience_elo":  {},
	"title_fight_elo": {},
	"win_type_elo":    {},
	"striking_elo":    {},
	"ground_elo":      {},
	"activity_elo":    {},
	"win_streak_elo":  {},
	"category_elo":    {},
	"combined_elo":    {},
	"peak_elo":        {},
}

const listEloRatingsOrdered = `SELECT fighter_name, basic_elo, experience_elo, title_fight_elo, win_type_elo, striking_elo,
       ground_elo, activity_elo, win_streak_elo, category_elo, combined_elo, peak_elo,
       fight_count, title_fight_count, current_win_streak, highest_win_streak,
       peak_elo_date, peak_elo_win_streak, title_weight_classes, last_updated
FROM elo_ratings
ORDER BY %s DESC, fighter_name ASC
LIMIT ?
`

// ListEloRatingsOrderedBy sorts by a rating column chosen at run time, which
// sqlc cannot express. column must be one of the rating columns.
func (q *Queries) ListEloRatingsOrderedBy(ctx context.Context, column string, limit int64) ([]EloRating, error) {
	if _, ok := rankableColumns[column]; !ok {
		return nil, fmt.Errorf("column %q is not rankable", column)
	}

	rows, err := q.db.QueryContext(ctx, fmt.Sprintf(listEloRatingsOrdered, column), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []EloRating
	for rows.Next() {
		var i EloRating
		if err := rows.Scan(
			&i.FighterName,
			&i.BasicElo,
			&i.ExperienceElo,
			&i.TitleFightElo,
			&i.WinTypeElo,
			&i.StrikingElo,
			&i.GroundElo,
			&i.ActivityElo,
			&i.WinStreakElo,
			&i.CategoryElo,
			&i.CombinedElo,
			&i.PeakElo,
			&i.FightCount,
			&i.TitleFightCount,
			&i.CurrentWinStreak,
			&i.HighestWinStreak,
			&i.PeakEloDate,
			&i.PeakEloWinStreak,
			&i.TitleWeightClasses,
			&i.LastUpdated,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
