package sqlinline

const QInsertGeneratedName = `--sql da968453-7db0-4eb9-a366-792eec71f72f
insert into generated_names (id, name, animal_type, count)
values ($1::uuid, $2::text, $3::text, $4::int)
returning created_at;
`

const QListRecentGeneratedNames = `--sql 48470977-b071-4702-83f1-ab0e30383983
select id::text, name, animal_type, count, created_at
from generated_names
order by created_at desc
limit $1;
`

const QCountGeneratedNames = `--sql b4353f60-2591-4459-9413-f901c47040ee
select count(*) from generated_names;
`
