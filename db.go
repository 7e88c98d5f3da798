package main

import (
	"database/sql"
	"fmt"

	_ "github.com/glebarez/go-sqlite"
)

// openStagingDB opens the in-memory sqlite database the loaded datasets are
// staged into. The join and the widget option lists are derived with SQL;
// nothing is persisted past process exit.
func openStagingDB() (*sql.DB, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open staging db: %w", err)
	}

	// sqlite drops an in-memory database when its last connection closes
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`
    CREATE TABLE players (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        player TEXT,
        team TEXT,
        archetype TEXT,
        age INTEGER,
        pos TEXT,
        o_spi REAL,
        d_spi REAL,
        spi REAL,
        value_added REAL
    );`); err != nil {
		return nil, fmt.Errorf("create players table: %w", err)
	}

	if _, err := db.Exec(`
    CREATE TABLE salaries (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        player_name TEXT,
        salary REAL
    );`); err != nil {
		return nil, fmt.Errorf("create salaries table: %w", err)
	}

	return db, nil
}

func stagePlayers(db *sql.DB, players []PlayerRecord) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	for _, p := range players {
		if _, err := tx.Exec(`
			INSERT INTO players (player, team, archetype, age, pos, o_spi, d_spi, spi, value_added)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.Name, p.Team, p.Archetype, p.Age, p.Position, p.OffImpact, p.DefImpact, p.Impact, p.ValueAdded); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert player %q: %w", p.Name, err)
		}
	}
	return tx.Commit()
}

func stageSalaries(db *sql.DB, salaries []SalaryRecord) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	for _, s := range salaries {
		if _, err := tx.Exec(`INSERT INTO salaries (player_name, salary) VALUES (?, ?)`,
			s.Name, s.Salary); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert salary %q: %w", s.Name, err)
		}
	}
	return tx.Commit()
}

// queryCombined left-joins the salary table onto the primary table by exact
// player name. Every salary row survives, once per matching team stint;
// impact columns come back NULL when the name has no primary match.
func queryCombined(db *sql.DB) ([]CombinedRow, error) {
	rows, err := db.Query(`
		SELECT s.player_name, s.salary,
		       p.team, p.archetype, p.age, p.pos, p.o_spi, p.d_spi, p.spi, p.value_added
		FROM salaries s
		LEFT JOIN players p ON p.player = s.player_name
		ORDER BY s.id, p.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var combined []CombinedRow
	for rows.Next() {
		var (
			row                    CombinedRow
			team, archetype, pos   sql.NullString
			age                    sql.NullInt64
			oSPI, dSPI, spi, value sql.NullFloat64
		)
		if err := rows.Scan(&row.Name, &row.Salary,
			&team, &archetype, &age, &pos, &oSPI, &dSPI, &spi, &value); err != nil {
			return nil, err
		}
		if team.Valid {
			row.Team = &team.String
		}
		if archetype.Valid {
			row.Archetype = &archetype.String
		}
		if age.Valid {
			a := int(age.Int64)
			row.Age = &a
		}
		if pos.Valid {
			row.Position = &pos.String
		}
		if oSPI.Valid {
			row.OffImpact = &oSPI.Float64
		}
		if dSPI.Valid {
			row.DefImpact = &dSPI.Float64
		}
		if spi.Valid {
			row.Impact = &spi.Float64
		}
		if value.Valid {
			row.ValueAdded = &value.Float64
		}
		combined = append(combined, row)
	}
	return combined, rows.Err()
}

// queryDistinct returns the distinct non-empty values of a players column in
// order of first appearance, for populating the dashboard dropdowns.
func queryDistinct(db *sql.DB, column string) ([]string, error) {
	q := fmt.Sprintf(`SELECT %s FROM players WHERE %s <> '' GROUP BY %s ORDER BY MIN(id)`,
		column, column, column)
	rows, err := db.Query(q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}
