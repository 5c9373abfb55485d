package database

// SaleParquet structure optimisée pour l'export Parquet
type SaleParquet struct {
	SaleDate      string  `parquet:"name=sale_date, type=BYTE_ARRAY, convertedtype=UTF8"`
	TimeOfDay     string  `parquet:"name=time_of_day, type=BYTE_ARRAY, convertedtype=UTF8"`
	State         string  `parquet:"name=state, type=BYTE_ARRAY, convertedtype=UTF8"`
	CustomerGroup string  `parquet:"name=customer_group, type=BYTE_ARRAY, convertedtype=UTF8"`
	Unit          int32   `parquet:"name=unit, type=INT32"`
	Sales         float64 `parquet:"name=sales, type=DOUBLE"`
}
