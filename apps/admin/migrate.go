package main

import (
	"github.com/reubenc-bit/WiseEdu-sub001/storage/database"
)

var migrateFunc = database.Migrate // mockable

func (cli *commandLine) migrate() error {
	return migrateFunc(cli.db)
}
