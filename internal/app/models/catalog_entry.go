package models

// CatalogEntry is one billable-service definition. Key is the stable internal
// category key, Code the CUPS procedure/consultation code.
type CatalogEntry struct {
	Key          string  `bson:"clave" json:"key"`
	Code         string  `bson:"codigoCups" json:"code"`
	Value        float64 `bson:"valor" json:"value"`
	Finality     string  `bson:"finalidad" json:"finality"`
	Diagnosis    string  `bson:"diagnostico" json:"diagnosis"`
	ServiceGroup string  `bson:"grupoServicios" json:"serviceGroup"`
	Modality     string  `bson:"modalidad" json:"modality"`
}
