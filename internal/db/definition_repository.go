package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/deathfx/internal/effect"
)

// ErrDefinitionNotFound is returned by Get for unknown form IDs.
var ErrDefinitionNotFound = errors.New("magic effect definition not found")

// DefinitionRepository хранит определения магических эффектов и их keywords.
type DefinitionRepository struct {
	db *pgxpool.Pool
}

// NewDefinitionRepository создаёт новый DefinitionRepository.
func NewDefinitionRepository(db *pgxpool.Pool) *DefinitionRepository {
	return &DefinitionRepository{db: db}
}

const selectDefinition = `
	SELECT form_id, editor_id, hostile, hide_in_ui, archetype, resist_variable,
	       casting_type, minimum_skill_level, projectile_type
	FROM magic_effects`

func scanDefinition(row pgx.Row) (*effect.Definition, error) {
	var (
		def                            effect.Definition
		formID                         int64
		archetype, resist, castingType string
		projectile                     *int32
	)
	if err := row.Scan(&formID, &def.EditorID, &def.Hostile, &def.HideInUI,
		&archetype, &resist, &castingType, &def.MinimumSkillLevel, &projectile); err != nil {
		return nil, err
	}

	def.FormID = uint32(formID)
	if err := def.Archetype.UnmarshalText([]byte(archetype)); err != nil {
		return nil, fmt.Errorf("form %08X: %w", def.FormID, err)
	}
	if err := def.ResistVariable.UnmarshalText([]byte(resist)); err != nil {
		return nil, fmt.Errorf("form %08X: %w", def.FormID, err)
	}
	ct, err := effect.ParseCastingType(castingType)
	if err != nil {
		return nil, fmt.Errorf("form %08X: %w", def.FormID, err)
	}
	def.CastingType = ct
	def.ProjectileType = projectile
	return &def, nil
}

// LoadAll загружает все определения вместе с keywords, отсортированные по form_id.
func (r *DefinitionRepository) LoadAll(ctx context.Context) ([]*effect.Definition, error) {
	rows, err := r.db.Query(ctx, selectDefinition+` ORDER BY form_id`)
	if err != nil {
		return nil, fmt.Errorf("querying magic effects: %w", err)
	}
	defer rows.Close()

	defs := make([]*effect.Definition, 0, 256)
	byID := make(map[uint32]*effect.Definition, 256)
	for rows.Next() {
		def, err := scanDefinition(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning magic effect row: %w", err)
		}
		defs = append(defs, def)
		byID[def.FormID] = def
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating magic effect rows: %w", err)
	}

	kwRows, err := r.db.Query(ctx, `SELECT form_id, keyword FROM magic_effect_keywords ORDER BY form_id, keyword`)
	if err != nil {
		return nil, fmt.Errorf("querying magic effect keywords: %w", err)
	}
	defer kwRows.Close()

	for kwRows.Next() {
		var formID int64
		var keyword string
		if err := kwRows.Scan(&formID, &keyword); err != nil {
			return nil, fmt.Errorf("scanning keyword row: %w", err)
		}
		if def := byID[uint32(formID)]; def != nil {
			def.Keywords = append(def.Keywords, keyword)
		}
	}
	if err := kwRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating keyword rows: %w", err)
	}

	return defs, nil
}

// Get возвращает одно определение. ErrDefinitionNotFound если формы нет.
func (r *DefinitionRepository) Get(ctx context.Context, formID uint32) (*effect.Definition, error) {
	def, err := scanDefinition(r.db.QueryRow(ctx, selectDefinition+` WHERE form_id = $1`, int64(formID)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("form %08X: %w", formID, ErrDefinitionNotFound)
		}
		return nil, fmt.Errorf("querying magic effect %08X: %w", formID, err)
	}

	rows, err := r.db.Query(ctx,
		`SELECT keyword FROM magic_effect_keywords WHERE form_id = $1 ORDER BY keyword`, int64(formID))
	if err != nil {
		return nil, fmt.Errorf("querying keywords for %08X: %w", formID, err)
	}
	keywords, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("collecting keywords for %08X: %w", formID, err)
	}
	def.Keywords = keywords

	return def, nil
}

// Save сохраняет определения (UPSERT) в одной транзакции.
// Keywords каждого определения перезаписываются полностью.
func (r *DefinitionRepository) Save(ctx context.Context, defs []*effect.Definition) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		// Rollback after commit is expected to fail
		_ = tx.Rollback(ctx)
	}()

	for _, def := range defs {
		if err := saveDefinition(ctx, tx, def); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing definitions save: %w", err)
	}
	return nil
}

func saveDefinition(ctx context.Context, tx pgx.Tx, def *effect.Definition) error {
	formID := int64(def.FormID)

	_, err := tx.Exec(ctx, `
		INSERT INTO magic_effects (form_id, editor_id, hostile, hide_in_ui, archetype,
		                           resist_variable, casting_type, minimum_skill_level, projectile_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (form_id) DO UPDATE SET
			editor_id = $2, hostile = $3, hide_in_ui = $4, archetype = $5,
			resist_variable = $6, casting_type = $7, minimum_skill_level = $8, projectile_type = $9`,
		formID, def.EditorID, def.Hostile, def.HideInUI, def.Archetype.String(),
		def.ResistVariable.String(), def.CastingType.String(), def.MinimumSkillLevel, def.ProjectileType,
	)
	if err != nil {
		return fmt.Errorf("upserting magic effect %08X: %w", def.FormID, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM magic_effect_keywords WHERE form_id = $1`, formID); err != nil {
		return fmt.Errorf("deleting keywords for %08X: %w", def.FormID, err)
	}

	if len(def.Keywords) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, kw := range def.Keywords {
		batch.Queue(`INSERT INTO magic_effect_keywords (form_id, keyword) VALUES ($1, $2) ON CONFLICT DO NOTHING`, formID, kw)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("inserting keywords for %08X: %w", def.FormID, err)
	}
	return nil
}

// Delete удаляет определение (keywords удаляются каскадом).
// Returns false if the form did not exist.
func (r *DefinitionRepository) Delete(ctx context.Context, formID uint32) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM magic_effects WHERE form_id = $1`, int64(formID))
	if err != nil {
		return false, fmt.Errorf("deleting magic effect %08X: %w", formID, err)
	}
	return tag.RowsAffected() > 0, nil
}

// Catalog загружает все определения в неизменяемый effect.Catalog.
func (r *DefinitionRepository) Catalog(ctx context.Context) (*effect.Catalog, error) {
	defs, err := r.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return effect.NewCatalog(defs), nil
}
