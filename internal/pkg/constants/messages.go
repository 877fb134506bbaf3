package constants

// Notification titles
const (
	TitleIncompleteFields = "Campos Incompletos"
	TitleAuthRequired     = "Inicio de Sesión Requerido"
	TitleSearchingDriver  = "Buscando Conductor"
	TitleSearchingCourier = "Buscando Repartidor"
	TitleBookingError     = "Error al Solicitar el Servicio"
	TitleDriverFound      = "¡Conductor Encontrado!"
	TitleCourierAssigned  = "¡Repartidor Asignado!"
	TitleServiceUpdate    = "Actualización de Servicio"
	TitleServiceFinished  = "¡Servicio Finalizado!"
	TitleRatingThanks     = "¡Gracias por tu Opinión!"
	TitleRatingError      = "Error al Guardar la Calificación"
	TitleRatingSkipped    = "Calificación Omitida"
	TitleReady            = "Listo para un nuevo servicio"
)

// Notification bodies. Verbs are fmt templates.
const (
	MessageIncompleteTrip     = "Por favor, ingrese el origen y el destino."
	MessageIncompleteDelivery = "Por favor, selecciona un comercio, ingresa detalles del pedido, origen y destino."
	MessageAuthRequired       = "Debes iniciar sesión para solicitar un servicio."
	MessageSearchingDriver    = "Estamos buscando el conductor más cercano para ti..."
	MessageSearchingCourier   = "Estamos buscando un repartidor para tu pedido de %s..."
	MessageBookingFallback    = "No se pudo crear tu solicitud. Inténtalo de nuevo."
	MessageBookingUnavailable = "El servicio no está disponible en este momento. Inténtalo más tarde."
	MessageDriverFound        = "Tu %s (%s) ha sido asignado y está en camino."
	MessageCourierAssigned    = "Un repartidor ha sido asignado para tu pedido de %s."
	MessageHalfway            = "Tu servicio está a mitad de camino."
	MessageArriving           = "Tu proveedor está llegando a tu destino."
	MessageServiceFinished    = "Gracias por usar LLEVA. Por favor, califica tu experiencia."
	MessageRatingThanks       = "Tu calificación ha sido enviada."
	MessageRatingFallback     = "No pudimos guardar tu calificación."
	MessageRatingSkipped      = "Puedes calificar tus servicios más tarde desde tu historial."
	MessageReady              = "Puedes solicitar otro viaje o entrega cuando quieras."
)

// Simulated provider copy
const (
	ChatAutoReply        = "Entendido. Gracias por la información."
	ChatTripGreeting     = "¡Hola! Tu %s está en camino."
	ChatDeliveryGreeting = "¡Hola! Estoy gestionando tu pedido de %s. Estaré en camino pronto."

	ServiceTypeTaxi     = "Taxi"
	ServiceTypeMotoTaxi = "Moto-Taxi"
	ServiceTypeDelivery = "Entrega de Comercio"

	ProviderTaxi     = "Taxista Asignado"
	ProviderMotoTaxi = "Mototaxista Asignado"
	ProviderCourier  = "Repartidor Asignado"

	UnknownMerchant       = "Comercio Desconocido"
	EstimatedArrival      = "%d minutos"
	PaymentCardDescriptor = "Tarjeta terminada en %d"
)
