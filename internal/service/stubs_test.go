package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/IgnacioMorard/AppServerTest/internal/model"
	"github.com/IgnacioMorard/AppServerTest/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── In-memory repository stubs ────────────────────────────────────────────────

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func strPtr(s string) *string { return &s }

func enVentana(fecha time.Time, rg repository.Rango) bool {
	return !fecha.Before(rg.Desde) && fecha.Before(rg.Hasta)
}

// ── Usuarios ──────────────────────────────────────────────────────────────────

type stubUsuarioRepo struct {
	seq   uint
	users map[uint]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{users: make(map[uint]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	r.seq++
	u.ID = r.seq
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uint) (*model.Usuario, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *stubUsuarioRepo) FindByUsername(_ context.Context, username string) (*model.Usuario, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	ids := make([]uint, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]model.Usuario, 0, len(ids))
	for _, id := range ids {
		out = append(out, *r.users[id])
	}
	return out, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *stubUsuarioRepo) UpdateStatus(_ context.Context, id uint, status string) (int64, error) {
	u, ok := r.users[id]
	if !ok {
		return 0, nil
	}
	u.Status = status
	u.FechaStatus = time.Now()
	return 1, nil
}

func (r *stubUsuarioRepo) UpdatePassword(_ context.Context, id uint, hash string) (int64, error) {
	u, ok := r.users[id]
	if !ok {
		return 0, nil
	}
	u.PasswordHash = hash
	return 1, nil
}

// ── Clientes ──────────────────────────────────────────────────────────────────

type stubClienteRepo struct {
	seq      uint
	clientes map[uint]*model.Cliente
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: make(map[uint]*model.Cliente)}
}

func (r *stubClienteRepo) Create(_ context.Context, c *model.Cliente) error {
	r.seq++
	c.ID = r.seq
	cp := *c
	r.clientes[c.ID] = &cp
	return nil
}

func (r *stubClienteRepo) FindByID(_ context.Context, id uint) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *stubClienteRepo) List(_ context.Context) ([]model.Cliente, error) {
	ids := make([]uint, 0, len(r.clientes))
	for id := range r.clientes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]model.Cliente, 0, len(ids))
	for _, id := range ids {
		out = append(out, *r.clientes[id])
	}
	return out, nil
}

func (r *stubClienteRepo) Search(_ context.Context, field repository.SearchField, text string) ([]model.Cliente, error) {
	var out []model.Cliente
	for _, c := range r.clientes {
		var col string
		switch field {
		case repository.SearchByDescript:
			col = c.Descript
		case repository.SearchByDNIRef:
			if c.DNIRef != nil {
				col = *c.DNIRef
			}
		case repository.SearchByNombreRef:
			if c.NombreRef != nil {
				col = *c.NombreRef
			}
		default:
			return nil, gorm.ErrInvalidField
		}
		// LIKE '%text%' without ILIKE — matches are case-sensitive.
		if strings.Contains(col, text) {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubClienteRepo) Update(_ context.Context, c *model.Cliente) error {
	cp := *c
	r.clientes[c.ID] = &cp
	return nil
}

func (r *stubClienteRepo) UpdateStatus(_ context.Context, id uint, status string) (int64, error) {
	c, ok := r.clientes[id]
	if !ok {
		return 0, nil
	}
	c.Status = status
	return 1, nil
}

func (r *stubClienteRepo) AjustarSaldo(_ context.Context, id uint, deuda decimal.Decimal) (int64, error) {
	c, ok := r.clientes[id]
	if !ok {
		return 0, nil
	}
	c.Saldo = c.Saldo.Sub(deuda)
	return 1, nil
}

// ── Productos ─────────────────────────────────────────────────────────────────

type stubProductoRepo struct {
	seq       uint
	productos map[uint]*model.Producto
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{productos: make(map[uint]*model.Producto)}
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	r.seq++
	p.ID = r.seq
	cp := *p
	r.productos[p.ID] = &cp
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id uint) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductoRepo) listar(soloActivos bool) []model.Producto {
	ids := make([]uint, 0, len(r.productos))
	for id := range r.productos {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	var out []model.Producto
	for _, id := range ids {
		p := r.productos[id]
		if soloActivos && p.Status != model.StatusActive {
			continue
		}
		out = append(out, *p)
	}
	return out
}

func (r *stubProductoRepo) ListActivos(_ context.Context) ([]model.Producto, error) {
	return r.listar(true), nil
}

func (r *stubProductoRepo) ListAll(_ context.Context) ([]model.Producto, error) {
	return r.listar(false), nil
}

func (r *stubProductoRepo) Update(_ context.Context, id uint, descript *string, valor *decimal.Decimal) (int64, error) {
	p, ok := r.productos[id]
	if !ok {
		return 0, nil
	}
	if descript != nil {
		p.Descript = *descript
	}
	if valor != nil {
		p.Valor = *valor
	}
	return 1, nil
}

func (r *stubProductoRepo) UpdateStatus(_ context.Context, id uint, status string) (int64, error) {
	p, ok := r.productos[id]
	if !ok {
		return 0, nil
	}
	p.Status = status
	return 1, nil
}

// ── Transacciones e inventario ────────────────────────────────────────────────

type stubTransaccionRepo struct {
	seq           uint
	transacciones []model.Transaccion
	items         []model.ItemInventario
}

func newStubTransaccionRepo() *stubTransaccionRepo { return &stubTransaccionRepo{} }

func (r *stubTransaccionRepo) Create(_ context.Context, t *model.Transaccion) error {
	r.seq++
	t.ID = r.seq
	if t.Fecha.IsZero() {
		t.Fecha = time.Now()
	}
	r.transacciones = append(r.transacciones, *t)
	return nil
}

func (r *stubTransaccionRepo) FindByID(_ context.Context, id uint) (*model.Transaccion, error) {
	for i := range r.transacciones {
		if r.transacciones[i].ID == id {
			cp := r.transacciones[i]
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubTransaccionRepo) ListByRango(_ context.Context, rg repository.Rango) ([]model.Transaccion, error) {
	var out []model.Transaccion
	for _, t := range r.transacciones {
		if enVentana(t.Fecha, rg) && (rg.UserID == 0 || t.UserID == rg.UserID) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *stubTransaccionRepo) CreateItem(_ context.Context, item *model.ItemInventario) error {
	r.items = append(r.items, *item)
	return nil
}

func (r *stubTransaccionRepo) ListItemsByRango(ctx context.Context, rg repository.Rango) ([]model.ItemInventario, error) {
	var out []model.ItemInventario
	for _, item := range r.items {
		t, err := r.FindByID(ctx, item.TransacID)
		if err != nil {
			continue
		}
		if enVentana(t.Fecha, rg) && (rg.UserID == 0 || t.UserID == rg.UserID) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *stubTransaccionRepo) DB() *gorm.DB { return nil }

// ── Egresos ───────────────────────────────────────────────────────────────────

type stubEgresoRepo struct {
	seq     uint
	egresos []model.Egreso
	nombres map[uint]string // user_id → display name for the join
}

func newStubEgresoRepo() *stubEgresoRepo {
	return &stubEgresoRepo{nombres: make(map[uint]string)}
}

func (r *stubEgresoRepo) Create(_ context.Context, e *model.Egreso) error {
	r.seq++
	e.ID = r.seq
	if e.Fecha.IsZero() {
		e.Fecha = time.Now()
	}
	r.egresos = append(r.egresos, *e)
	return nil
}

func (r *stubEgresoRepo) ListByRango(_ context.Context, rg repository.Rango) ([]repository.EgresoConUsuario, error) {
	var out []repository.EgresoConUsuario
	for _, e := range r.egresos {
		if !enVentana(e.Fecha, rg) || (rg.UserID != 0 && e.UserID != rg.UserID) {
			continue
		}
		out = append(out, repository.EgresoConUsuario{
			ID:          e.ID,
			UserID:      e.UserID,
			Nombre:      r.nombres[e.UserID],
			Fecha:       e.Fecha,
			Clase:       e.Clase,
			Descripcion: e.Descripcion,
			Monto:       e.Monto,
		})
	}
	return out, nil
}

func (r *stubEgresoRepo) SumByRango(ctx context.Context, rg repository.Rango) (decimal.Decimal, error) {
	rows, _ := r.ListByRango(ctx, rg)
	total := decimal.Zero
	for _, e := range rows {
		total = total.Add(e.Monto)
	}
	return total, nil
}

// ── Reportes ──────────────────────────────────────────────────────────────────

// stubReporteRepo evaluates the aggregate queries in memory over the same
// fixtures the other stubs hold.
type stubReporteRepo struct {
	transacciones *stubTransaccionRepo
	nombres       map[uint]string // user_id → nombre
	productos     map[uint]string // producto_id → descript
	egresos       *stubEgresoRepo
}

func (r *stubReporteRepo) TotalesTransacciones(ctx context.Context, rg repository.Rango) (repository.TotalesTransacciones, error) {
	t := repository.TotalesTransacciones{
		Valor: decimal.Zero, PagoEFE: decimal.Zero, PagoMP: decimal.Zero, PagoBOT: decimal.Zero,
	}
	rows, _ := r.transacciones.ListByRango(ctx, rg)
	for _, tx := range rows {
		t.Valor = t.Valor.Add(tx.Valor)
		t.PagoEFE = t.PagoEFE.Add(tx.PagoEFE)
		t.PagoMP = t.PagoMP.Add(tx.PagoMP)
		t.PagoBOT = t.PagoBOT.Add(tx.PagoBOT)
	}
	return t, nil
}

func (r *stubReporteRepo) UnidadesVendidas(ctx context.Context, rg repository.Rango) (int64, error) {
	items, _ := r.transacciones.ListItemsByRango(ctx, rg)
	var total int64
	for _, item := range items {
		total += int64(item.Amount)
	}
	return total, nil
}

func (r *stubReporteRepo) TotalesPorUsuario(ctx context.Context, rg repository.Rango) ([]repository.UsuarioTotales, error) {
	rows, _ := r.transacciones.ListByRango(ctx, rg)
	porUsuario := make(map[uint]*repository.UsuarioTotales)
	for _, tx := range rows {
		u, ok := porUsuario[tx.UserID]
		if !ok {
			u = &repository.UsuarioTotales{
				UserID: tx.UserID, Nombre: r.nombres[tx.UserID],
				PagoEFE: decimal.Zero, PagoMP: decimal.Zero,
			}
			porUsuario[tx.UserID] = u
		}
		u.PagoEFE = u.PagoEFE.Add(tx.PagoEFE)
		u.PagoMP = u.PagoMP.Add(tx.PagoMP)
	}
	ids := make([]uint, 0, len(porUsuario))
	for id := range porUsuario {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]repository.UsuarioTotales, 0, len(ids))
	for _, id := range ids {
		out = append(out, *porUsuario[id])
	}
	return out, nil
}

func (r *stubReporteRepo) EgresosPorUsuario(ctx context.Context, rg repository.Rango) ([]repository.UsuarioEgresoTotal, error) {
	rows, _ := r.egresos.ListByRango(ctx, rg)
	porUsuario := make(map[uint]decimal.Decimal)
	for _, e := range rows {
		porUsuario[e.UserID] = porUsuario[e.UserID].Add(e.Monto)
	}
	var out []repository.UsuarioEgresoTotal
	for id, total := range porUsuario {
		out = append(out, repository.UsuarioEgresoTotal{UserID: id, Total: total})
	}
	return out, nil
}

func (r *stubReporteRepo) EgresosPorClase(ctx context.Context, rg repository.Rango) ([]repository.ClaseTotal, error) {
	rows, _ := r.egresos.ListByRango(ctx, rg)
	porClase := make(map[string]decimal.Decimal)
	var orden []string
	for _, e := range rows {
		if _, ok := porClase[e.Clase]; !ok {
			orden = append(orden, e.Clase)
		}
		porClase[e.Clase] = porClase[e.Clase].Add(e.Monto)
	}
	out := make([]repository.ClaseTotal, 0, len(orden))
	for _, clase := range orden {
		out = append(out, repository.ClaseTotal{Clase: clase, Total: porClase[clase]})
	}
	return out, nil
}

func (r *stubReporteRepo) ResumenInventario(ctx context.Context, rg repository.Rango) ([]repository.ResumenProducto, error) {
	items, _ := r.transacciones.ListItemsByRango(ctx, rg)
	porProducto := make(map[uint]*repository.ResumenProducto)
	for _, item := range items {
		p, ok := porProducto[item.ProductoID]
		if !ok {
			p = &repository.ResumenProducto{
				ProductoID: item.ProductoID,
				Descript:   r.productos[item.ProductoID],
				Total:      decimal.Zero,
			}
			porProducto[item.ProductoID] = p
		}
		p.Unidades += int64(item.Amount)
		p.Total = p.Total.Add(item.Costo.Mul(decimal.NewFromInt(int64(item.Amount))))
	}
	ids := make([]uint, 0, len(porProducto))
	for id := range porProducto {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]repository.ResumenProducto, 0, len(ids))
	for _, id := range ids {
		out = append(out, *porProducto[id])
	}
	return out, nil
}
