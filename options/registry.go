package options

import "strings"

// Names of the options recognized by the data source layer. These keys are
// consumed here and never forwarded to the downstream JDBC driver.
const (
	// OptURL is the config name of the connection URL.
	OptURL = "url"
	// OptTable is the config name of the table to read or write.
	OptTable = "dbtable"
	// OptDriver is the config name of an explicit JDBC driver class.
	OptDriver = "driver"
	// OptPartitionColumn is the config name of the column used to split reads.
	OptPartitionColumn = "partitionColumn"
	// OptLowerBound is the config name of the lowest partition bound.
	OptLowerBound = "lowerBound"
	// OptUpperBound is the config name of the highest partition bound.
	OptUpperBound = "upperBound"
	// OptNumPartitions is the config name of the read partition count.
	OptNumPartitions = "numPartitions"
	// OptFetchSize is the config name of the JDBC fetch size.
	OptFetchSize = "fetchsize"
	// OptTruncate is the config name of the truncate-on-overwrite flag.
	OptTruncate = "truncate"
	// OptCreateTableOptions is the config name of extra CREATE TABLE clauses.
	OptCreateTableOptions = "createTableOptions"
	// OptCreateTableColumnTypes is the config name of column type overrides.
	OptCreateTableColumnTypes = "createTableColumnTypes"
	// OptBatchSize is the config name of the JDBC write batch size.
	OptBatchSize = "batchsize"
	// OptIsolationLevel is the config name of the transaction isolation level.
	OptIsolationLevel = "isolationLevel"
	// OptRegion is the config name of the AWS region Athena is queried in.
	OptRegion = "region"
)

var reservedNames = []string{
	OptURL,
	OptTable,
	OptDriver,
	OptPartitionColumn,
	OptLowerBound,
	OptUpperBound,
	OptNumPartitions,
	OptFetchSize,
	OptTruncate,
	OptCreateTableOptions,
	OptCreateTableColumnTypes,
	OptBatchSize,
	OptIsolationLevel,
	OptRegion,
}

var reservedSet = func() map[string]struct{} {
	s := make(map[string]struct{}, len(reservedNames))
	for _, name := range reservedNames {
		s[strings.ToLower(name)] = struct{}{}
	}
	return s
}()

// ReservedNames returns the recognized option names in registration order.
func ReservedNames() []string {
	out := make([]string, len(reservedNames))
	copy(out, reservedNames)
	return out
}

// IsReserved reports whether key names a recognized option. The check is
// case-insensitive.
func IsReserved(key string) bool {
	_, ok := reservedSet[strings.ToLower(key)]
	return ok
}
