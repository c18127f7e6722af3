package store

const schema = `
CREATE TABLE IF NOT EXISTS words (
    literal TEXT PRIMARY KEY,
    length INTEGER NOT NULL,
    hidden BOOLEAN NOT NULL DEFAULT 0,
    added_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS used_keys (
    key TEXT PRIMARY KEY,
    used_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS puzzles (
    id TEXT PRIMARY KEY,
    letters TEXT NOT NULL,
    word_count INTEGER NOT NULL,
    score INTEGER NOT NULL,
    path TEXT,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_words_length ON words(length);
CREATE INDEX IF NOT EXISTS idx_puzzles_letters ON puzzles(letters);
`
