package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// BackupService exports the whole store as a portable SQL script that can be
// replayed against an empty database to restore it.
type BackupService interface {
	ExportSQL(ctx context.Context) (string, error)
}

type backupService struct {
	db *gorm.DB
}

func NewBackupService(db *gorm.DB) BackupService {
	return &backupService{db: db}
}

// exportTables lists the tables included in the dump, in dependency order so
// the script replays cleanly with foreign keys enabled.
var exportTables = []string{
	"usuarios",
	"categorias",
	"marcas",
	"proveedores",
	"clientes",
	"productos",
	"compras",
	"detalle_compras",
	"pagos_compras",
	"ventas",
	"detalle_ventas",
	"pagos_ventas",
	"movimientos_stock",
	"historial_precios",
}

func (s *backupService) ExportSQL(ctx context.Context) (string, error) {
	var sb strings.Builder
	sb.WriteString("-- Respaldo generado " + time.Now().Format(time.RFC3339) + "\n")
	sb.WriteString("BEGIN TRANSACTION;\n")

	db := s.db.WithContext(ctx)
	for _, table := range exportTables {
		var createStmt *string
		err := db.Raw(
			"SELECT sql FROM sqlite_master WHERE type = 'table' AND name = ?", table,
		).Scan(&createStmt).Error
		if err != nil {
			return "", err
		}
		if createStmt == nil {
			continue
		}
		sb.WriteString("\n-- Tabla: " + table + "\n")
		sb.WriteString(*createStmt + ";\n")

		rows, err := db.Raw("SELECT * FROM " + table).Rows()
		if err != nil {
			return "", err
		}
		cols, err := rows.Columns()
		if err != nil {
			rows.Close()
			return "", err
		}

		for rows.Next() {
			values := make([]any, len(cols))
			ptrs := make([]any, len(cols))
			for i := range values {
				ptrs[i] = &values[i]
			}
			if err := rows.Scan(ptrs...); err != nil {
				rows.Close()
				return "", err
			}
			sb.WriteString(fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s);\n",
				table, strings.Join(cols, ", "), renderValues(values)))
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return "", err
		}
		rows.Close()
	}

	sb.WriteString("\nCOMMIT;\n")
	return sb.String(), nil
}

func renderValues(values []any) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, renderSQLValue(v))
	}
	return strings.Join(parts, ", ")
}

// renderSQLValue renders one column value as a SQL literal. Strings escape
// single quotes by doubling them and backslashes by doubling them.
func renderSQLValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case bool:
		if val {
			return "1"
		}
		return "0"
	case int64:
		return fmt.Sprintf("%d", val)
	case float64:
		return fmt.Sprintf("%g", val)
	case []byte:
		return quoteSQLString(string(val))
	case string:
		return quoteSQLString(val)
	case time.Time:
		return quoteSQLString(val.Format("2006-01-02 15:04:05"))
	default:
		return quoteSQLString(fmt.Sprintf("%v", val))
	}
}

func quoteSQLString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "'", "''")
	return "'" + s + "'"
}
