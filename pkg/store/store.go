// Package store 提供基于 SQLite 的心愿存储
//
// 揭晓端只需要 Open（浏览计数 +1 后读取）；创建、列表、删除由 wishctl 使用。
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/decker502/wishbloom/pkg/config"
	"github.com/decker502/wishbloom/pkg/types"
)

// ErrWishNotFound 心愿不存在
var ErrWishNotFound = errors.New("wish not found")

// WishInput 创建心愿的参数
type WishInput struct {
	Name    string
	Message string
	Theme   string // 为空时使用 birthday
	Pin     string // 为空表示不加锁
}

// wishRow 数据库行
type wishRow struct {
	ID        string         `db:"id"`
	Name      string         `db:"name"`
	Message   string         `db:"message"`
	Theme     string         `db:"theme"`
	Pin       sql.NullString `db:"pin"`
	Views     int            `db:"views"`
	CreatedAt int64          `db:"created_at"` // Unix 毫秒
}

func (r wishRow) toWish() types.Wish {
	var pin *string
	if r.Pin.Valid {
		pin = types.PinPtr(r.Pin.String)
	}
	return types.Wish{
		ID:        r.ID,
		Name:      r.Name,
		Message:   r.Message,
		Theme:     r.Theme,
		Pin:       pin,
		Views:     r.Views,
		CreatedAt: time.UnixMilli(r.CreatedAt),
	}
}

const wishColumns = "id, name, message, theme, pin, views, created_at"

// Store SQLite 心愿存储
type Store struct {
	conn *sqlx.DB
	now  func() time.Time
}

// Open 打开或创建数据库文件
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &Store{conn: conn, now: time.Now}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close 关闭数据库连接
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS wishes (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		message TEXT NOT NULL,
		theme TEXT NOT NULL,
		pin TEXT,
		views INTEGER NOT NULL DEFAULT 0,
		created_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_wishes_created ON wishes(created_at);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// Create 创建心愿，返回新 id
// 主题为空时使用 birthday；空 PIN 存为 NULL
func (s *Store) Create(ctx context.Context, in WishInput) (string, error) {
	theme := in.Theme
	if theme == "" {
		theme = string(config.ThemeBirthday)
	}

	var pin sql.NullString
	if in.Pin != "" {
		pin = sql.NullString{String: in.Pin, Valid: true}
	}

	id := uuid.NewString()
	_, err := s.conn.ExecContext(ctx,
		"INSERT INTO wishes ("+wishColumns+") VALUES (?, ?, ?, ?, ?, 0, ?)",
		id, in.Name, in.Message, theme, pin, s.now().UnixMilli(),
	)
	if err != nil {
		return "", fmt.Errorf("insert wish: %w", err)
	}
	return id, nil
}

// Open 揭晓页读取：浏览计数 +1 后返回心愿
func (s *Store) Open(ctx context.Context, id string) (types.Wish, error) {
	res, err := s.conn.ExecContext(ctx, "UPDATE wishes SET views = views + 1 WHERE id = ?", id)
	if err != nil {
		return types.Wish{}, fmt.Errorf("increment views %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return types.Wish{}, fmt.Errorf("%w: %s", ErrWishNotFound, id)
	}
	return s.Get(ctx, id)
}

// Get 读取心愿，不改变浏览计数
func (s *Store) Get(ctx context.Context, id string) (types.Wish, error) {
	var row wishRow
	err := s.conn.GetContext(ctx, &row, "SELECT "+wishColumns+" FROM wishes WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Wish{}, fmt.Errorf("%w: %s", ErrWishNotFound, id)
	}
	if err != nil {
		return types.Wish{}, fmt.Errorf("get wish %s: %w", id, err)
	}
	return row.toWish(), nil
}

// Delete 删除心愿
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.conn.ExecContext(ctx, "DELETE FROM wishes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete wish %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrWishNotFound, id)
	}
	return nil
}

// List 按创建时间倒序列出所有心愿
func (s *Store) List(ctx context.Context) ([]types.Wish, error) {
	var rows []wishRow
	err := s.conn.SelectContext(ctx, &rows,
		"SELECT "+wishColumns+" FROM wishes ORDER BY created_at DESC, rowid DESC")
	if err != nil {
		return nil, fmt.Errorf("list wishes: %w", err)
	}

	wishes := make([]types.Wish, len(rows))
	for i, r := range rows {
		wishes[i] = r.toWish()
	}
	return wishes, nil
}

// ShareLink 分享链接：<base>/wish/<id>
func ShareLink(baseURL, id string) string {
	return strings.TrimRight(baseURL, "/") + "/wish/" + id
}
