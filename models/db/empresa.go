package dbmodels

type Empresa struct {
	BaseModel
	Nombre    string `gorm:"type:varchar(300)"`
	RucNit    string `gorm:"type:varchar(50);index"`
	Direccion string
	Sector    string `gorm:"type:varchar(100)"`
	Contacto  string `gorm:"type:varchar(150)"`
}

// Proveedor puede ser global (EmpresaID nulo) o propio de una empresa
type Proveedor struct {
	BaseModel
	EmpresaID       *string `gorm:"type:varchar(36);index"`
	Empresa         *Empresa
	RazonSocial     string `gorm:"type:varchar(300)"`
	DocumentoFiscal string `gorm:"type:varchar(50)"`
	Contacto        string `gorm:"type:varchar(150)"`
}

// EsGlobal indica un proveedor disponible para cualquier empresa
func (p Proveedor) EsGlobal() bool {
	return p.EmpresaID == nil || *p.EmpresaID == ""
}
