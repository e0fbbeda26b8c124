// vouchers es el cliente de consola del almacén de vouchers. Ofrece los tres
// flujos del ciclo de vida:
//
//	vouchers -listar
//	vouchers -registrar -numero 12345 -entidad Yape -dniruc 70001122 [-fecha 2024-06-01 -hora 09:15]
//	vouchers -buscar -numero 12345 -entidad Yape
//
// La dirección del almacén se toma de VOUCHER_API_URL (por defecto
// http://localhost:8080).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/carlosxd753/vouchers/internal/application/consulta"
	"github.com/carlosxd753/vouchers/internal/application/listado"
	"github.com/carlosxd753/vouchers/internal/application/registro"
	"github.com/carlosxd753/vouchers/internal/domain/entity"
	"github.com/carlosxd753/vouchers/internal/infrastructure/voucherstore"
	"github.com/carlosxd753/vouchers/internal/interfaces/consola"
	"github.com/carlosxd753/vouchers/pkg/config"
	"github.com/carlosxd753/vouchers/pkg/logger"
)

func main() {
	var (
		listar    = flag.Bool("listar", false, "listar vouchers agrupados por día")
		registrar = flag.Bool("registrar", false, "registrar un voucher")
		buscar    = flag.Bool("buscar", false, "buscar un voucher por número de operación y entidad")
		numero    = flag.String("numero", "", "número de operación")
		entidad   = flag.String("entidad", string(entity.EntidadBCP), "entidad de pago")
		dniRuc    = flag.String("dniruc", "", "DNI o RUC del cliente")
		fecha     = flag.String("fecha", "", "fecha del pago (yyyy-MM-dd; por defecto hoy)")
		hora      = flag.String("hora", "", "hora del pago (HH:mm; por defecto ahora)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	store := voucherstore.NewClienteHTTP(cfg.Store.APIURL, log)
	notificador := consola.NewNotificador(os.Stdout)
	ctx := context.Background()

	switch {
	case *registrar:
		listadoUC := listado.NewListarVouchersUseCase(store, log)
		// Señal de refresco: tras un registro exitoso se re-consulta el
		// listado y se muestra actualizado.
		registroUC := registro.NewRegistrarVoucherUseCase(store, notificador, log,
			registro.ConSenalRefresco(func() {
				if err := listadoUC.Refrescar(ctx); err == nil {
					imprimirGrupos(listadoUC)
				}
			}),
		)
		registroUC.SetNumeroOperacion(*numero)
		registroUC.SetClienteDniRuc(*dniRuc)
		ent, err := entity.ParseEntidad(*entidad)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		registroUC.SetEntidad(ent)
		if *fecha != "" {
			registroUC.SetFecha(*fecha)
		}
		if *hora != "" {
			registroUC.SetHora(*hora)
		}
		registroUC.Enviar(ctx)

	case *buscar:
		consultaUC := consulta.NewConsultarVoucherUseCase(store, log)
		consultaUC.SetNumeroOperacion(*numero)
		ent, err := entity.ParseEntidad(*entidad)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		consultaUC.SetEntidad(ent)
		consultaUC.Buscar(ctx)
		if msg := consultaUC.MensajeError(); msg != "" {
			notificador.Error("Error", msg)
			os.Exit(1)
		}
		v := consultaUC.Vista()
		if v == nil {
			notificador.Error("Error", consulta.MensajeNoEncontrado)
			os.Exit(1)
		}
		fmt.Printf("Número de Operación: %s\n", v.NumeroOperacion)
		fmt.Printf("Entidad:             %s\n", v.Entidad)
		fmt.Printf("DNI/RUC Cliente:     %s\n", v.ClienteDniRuc)
		fmt.Printf("Fecha/Hora:          %s\n", v.FechaHora)
		fmt.Printf("Se registró el:      %s\n", v.RegistradoEl)

	case *listar:
		listadoUC := listado.NewListarVouchersUseCase(store, log)
		if err := listadoUC.Cargar(ctx); err != nil {
			notificador.Error("Error", "No se pudo conectar con el servidor")
			os.Exit(1)
		}
		imprimirGrupos(listadoUC)

	default:
		flag.Usage()
		os.Exit(2)
	}
}

func imprimirGrupos(uc *listado.ListarVouchersUseCase) {
	for _, g := range uc.Grupos() {
		fmt.Println(g.Fecha)
		for _, v := range g.Vouchers {
			fmt.Printf("  %s  %-20s %s  %s\n",
				v.FechaHora.Format("15:04"), v.Entidad, v.NumeroOperacion, v.ClienteDniRuc)
		}
	}
}
