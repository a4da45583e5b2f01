package schema

// item_value holds the whole json collection, so it needs more than the 64KB of TEXT.
const schema = `CREATE TABLE kv_store (item_key VARCHAR(255) NOT NULL PRIMARY KEY, item_value LONGTEXT NOT NULL)`

const dropSchema = `DROP TABLE kv_store`
