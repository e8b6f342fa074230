package dto

// DTOs for the catalog side tables: categorias, marcas y proveedores.

// ─── Categorias ──────────────────────────────────────────────────────────────

type CrearCategoriaRequest struct {
	NombreCategoria string  `json:"nombre_categoria" validate:"required,min=1,max=100"`
	Descripcion     *string `json:"descripcion"      validate:"omitempty,max=500"`
}

type ActualizarCategoriaRequest struct {
	NombreCategoria string  `json:"nombre_categoria" validate:"required,min=1,max=100"`
	Descripcion     *string `json:"descripcion"      validate:"omitempty,max=500"`
}

type CategoriaResponse struct {
	ID              int64   `json:"id"`
	NombreCategoria string  `json:"nombre_categoria"`
	Descripcion     *string `json:"descripcion"`
}

// ─── Marcas ──────────────────────────────────────────────────────────────────

type CrearMarcaRequest struct {
	NombreMarca string  `json:"nombre_marca" validate:"required,min=1,max=100"`
	CategoriaID int64   `json:"categoria_id" validate:"required,min=1"`
	Descripcion *string `json:"descripcion"  validate:"omitempty,max=500"`
}

type ActualizarMarcaRequest struct {
	NombreMarca string  `json:"nombre_marca" validate:"required,min=1,max=100"`
	CategoriaID int64   `json:"categoria_id" validate:"required,min=1"`
	Descripcion *string `json:"descripcion"  validate:"omitempty,max=500"`
}

type MarcaResponse struct {
	ID          int64   `json:"id"`
	NombreMarca string  `json:"nombre_marca"`
	CategoriaID int64   `json:"categoria_id"`
	Categoria   string  `json:"categoria,omitempty"`
	Descripcion *string `json:"descripcion"`
}

// ─── Proveedores ─────────────────────────────────────────────────────────────

type CrearProveedorRequest struct {
	NombreProveedor string  `json:"nombre_proveedor" validate:"required,min=1,max=150"`
	Contacto        *string `json:"contacto"         validate:"omitempty,max=150"`
	Descripcion     *string `json:"descripcion"      validate:"omitempty,max=500"`
}

type ActualizarProveedorRequest struct {
	NombreProveedor string  `json:"nombre_proveedor" validate:"required,min=1,max=150"`
	Contacto        *string `json:"contacto"         validate:"omitempty,max=150"`
	Descripcion     *string `json:"descripcion"      validate:"omitempty,max=500"`
}

type ProveedorResponse struct {
	ID              int64   `json:"id"`
	NombreProveedor string  `json:"nombre_proveedor"`
	Contacto        *string `json:"contacto"`
	Descripcion     *string `json:"descripcion"`
}

// ─── Clientes ────────────────────────────────────────────────────────────────

type CrearClienteRequest struct {
	NombreCliente string  `json:"nombre_cliente" validate:"required,min=1,max=150"`
	Contacto      *string `json:"contacto"       validate:"omitempty,max=150"`
	Descripcion   *string `json:"descripcion"    validate:"omitempty,max=500"`
}

type ActualizarClienteRequest struct {
	NombreCliente string  `json:"nombre_cliente" validate:"required,min=1,max=150"`
	Contacto      *string `json:"contacto"       validate:"omitempty,max=150"`
	Descripcion   *string `json:"descripcion"    validate:"omitempty,max=500"`
}

type ClienteResponse struct {
	ID            int64   `json:"id"`
	NombreCliente string  `json:"nombre_cliente"`
	Contacto      *string `json:"contacto"`
	Descripcion   *string `json:"descripcion"`
	Activo        bool    `json:"activo"`
}
