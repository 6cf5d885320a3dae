package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.Spanish

	// Layout
	message.SetString(lang, "layout.app_name", "Directorio de Laboratorios")
	message.SetString(lang, "nav.home", "Inicio")
	message.SetString(lang, "nav.profile", "Mi perfil")
	message.SetString(lang, "nav.manage_accounts", "Administrar cuentas")
	message.SetString(lang, "nav.sign_out", "Cerrar sesión")

	// Shared actions
	message.SetString(lang, "common.save", "Guardar")
	message.SetString(lang, "common.cancel", "Cancelar")
	message.SetString(lang, "common.edit", "Editar")
	message.SetString(lang, "common.delete", "Eliminar")
	message.SetString(lang, "common.yes", "Sí")
	message.SetString(lang, "common.no", "No")

	// Form validation
	message.SetString(lang, "form.error_required", "Este campo es obligatorio.")
	message.SetString(lang, "form.error_email", "Ingresa un correo válido.")
	message.SetString(lang, "form.error_number", "Ingresa un número válido.")
	message.SetString(lang, "form.error_password_length", "La contraseña debe tener al menos 6 caracteres.")
	message.SetString(lang, "form.error_password_mismatch", "Las contraseñas no coinciden.")

	// Login
	message.SetString(lang, "login.title", "Iniciar sesión")
	message.SetString(lang, "login.heading", "Inicia sesión en el directorio de laboratorios")
	message.SetString(lang, "login.email", "Correo electrónico")
	message.SetString(lang, "login.password", "Contraseña")
	message.SetString(lang, "login.submit", "Iniciar sesión")
	message.SetString(lang, "login.link_register", "Crear una cuenta")
	message.SetString(lang, "login.link_recover", "¿Olvidaste tu contraseña?")
	message.SetString(lang, "login.error_default", "Credenciales inválidas o usuario no encontrado.")
	message.SetString(lang, "login.notice_signed_out", "Has cerrado sesión.")

	// Register
	message.SetString(lang, "register.title", "Nueva cuenta")
	message.SetString(lang, "register.heading", "Crea tu cuenta")
	message.SetString(lang, "register.name", "Nombre completo")
	message.SetString(lang, "register.email", "Correo electrónico")
	message.SetString(lang, "register.password", "Contraseña")
	message.SetString(lang, "register.confirm_password", "Confirmar contraseña")
	message.SetString(lang, "register.submit", "Crear cuenta")
	message.SetString(lang, "register.link_login", "Volver a iniciar sesión")
	message.SetString(lang, "register.notice_created", "¡Cuenta creada con éxito! Ahora puedes iniciar sesión.")
	message.SetString(lang, "register.error_default", "Error al crear cuenta. Es posible que el correo ya esté registrado.")

	// Recover password
	message.SetString(lang, "recover.title", "Recuperar contraseña")
	message.SetString(lang, "recover.heading", "Restablece tu contraseña")
	message.SetString(lang, "recover.email", "Correo electrónico")
	message.SetString(lang, "recover.new_password", "Nueva contraseña")
	message.SetString(lang, "recover.confirm_password", "Confirmar nueva contraseña")
	message.SetString(lang, "recover.submit", "Actualizar contraseña")
	message.SetString(lang, "recover.link_login", "Volver a iniciar sesión")
	message.SetString(lang, "recover.notice_updated", "¡Tu contraseña ha sido actualizada correctamente!")
	message.SetString(lang, "recover.error_default", "No se pudo actualizar la contraseña. Verifica el correo ingresado.")

	// Profile
	message.SetString(lang, "profile.title", "Mi perfil")
	message.SetString(lang, "profile.heading", "Mi perfil")
	message.SetString(lang, "profile.name", "Nombre completo")
	message.SetString(lang, "profile.email", "Correo electrónico")
	message.SetString(lang, "profile.password", "Nueva contraseña")
	message.SetString(lang, "profile.password_hint", "Déjala en blanco para conservar tu contraseña actual.")
	message.SetString(lang, "profile.notice_saved", "Perfil actualizado correctamente.")
	message.SetString(lang, "profile.error_default", "Hubo un error al guardar los cambios.")

	// Admin users
	message.SetString(lang, "adminusers.title", "Cuentas")
	message.SetString(lang, "adminusers.heading", "Administrar cuentas")
	message.SetString(lang, "adminusers.col_id", "ID")
	message.SetString(lang, "adminusers.col_name", "Nombre")
	message.SetString(lang, "adminusers.col_email", "Correo")
	message.SetString(lang, "adminusers.col_active", "Activo")
	message.SetString(lang, "adminusers.col_admin", "Admin")
	message.SetString(lang, "adminusers.col_created", "Creado")
	message.SetString(lang, "adminusers.edit_heading", "Editar usuario")
	message.SetString(lang, "adminusers.field_active", "Cuenta activa")
	message.SetString(lang, "adminusers.field_admin", "Administrador")
	message.SetString(lang, "adminusers.password_hint", "Déjala en blanco para conservar la contraseña actual.")
	message.SetString(lang, "adminusers.delete_heading", "Eliminar usuario")
	message.SetString(lang, "adminusers.delete_confirm", "¿Seguro que deseas eliminar la cuenta %q?")
	message.SetString(lang, "adminusers.error_load", "No se pudieron cargar los usuarios.")
	message.SetString(lang, "adminusers.notice_updated", "Usuario actualizado correctamente.")
	message.SetString(lang, "adminusers.error_update", "No se pudo guardar el usuario.")
	message.SetString(lang, "adminusers.notice_deleted", "Usuario eliminado correctamente.")
	message.SetString(lang, "adminusers.error_delete", "No se pudo eliminar el usuario.")

	// Labs
	message.SetString(lang, "labs.title", "Laboratorios")
	message.SetString(lang, "labs.heading", "Laboratorios")
	message.SetString(lang, "labs.col_code", "Código")
	message.SetString(lang, "labs.col_name", "Nombre")
	message.SetString(lang, "labs.col_location", "Ubicación")
	message.SetString(lang, "labs.col_capacity", "Capacidad")
	message.SetString(lang, "labs.col_active", "Activo")
	message.SetString(lang, "labs.col_owner", "Asignado a")
	message.SetString(lang, "labs.owner_unassigned", "Sin asignar")
	message.SetString(lang, "labs.empty", "No hay laboratorios para mostrar.")
	message.SetString(lang, "labs.new", "Nuevo laboratorio")
	message.SetString(lang, "labs.new_heading", "Nuevo laboratorio")
	message.SetString(lang, "labs.edit_heading", "Editar laboratorio")
	message.SetString(lang, "labs.field_code", "Código")
	message.SetString(lang, "labs.field_name", "Nombre")
	message.SetString(lang, "labs.field_location", "Ubicación")
	message.SetString(lang, "labs.field_capacity", "Capacidad")
	message.SetString(lang, "labs.field_active", "Activo")
	message.SetString(lang, "labs.field_owner", "Usuario asignado")
	message.SetString(lang, "labs.owner_none_option", "Sin asignar")
	message.SetString(lang, "labs.delete_heading", "Eliminar laboratorio")
	message.SetString(lang, "labs.delete_confirm", "¿Seguro que deseas eliminar el laboratorio %q?")
	message.SetString(lang, "labs.error_load", "No se pudieron cargar los laboratorios.")
	message.SetString(lang, "labs.error_users_load", "No se pudieron cargar los usuarios.")
	message.SetString(lang, "labs.notice_created", "Laboratorio creado correctamente.")
	message.SetString(lang, "labs.error_create", "No se pudo crear el laboratorio.")
	message.SetString(lang, "labs.notice_updated", "Laboratorio actualizado correctamente.")
	message.SetString(lang, "labs.error_update", "No se pudo actualizar el laboratorio.")
	message.SetString(lang, "labs.notice_deleted", "Laboratorio eliminado correctamente.")
	message.SetString(lang, "labs.error_delete", "No se pudo eliminar el laboratorio.")

	// Errors
	message.SetString(lang, "error.generic", "Algo salió mal. Inténtalo de nuevo.")
	message.SetString(lang, "error.not_found", "Página no encontrada.")
}
