package export

import "errors"

// UserMessage maps an export error to the text shown to the user.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingPhone):
		return "Nomor HP pemilik belum diisi."
	case errors.Is(err, ErrBusy):
		return "Masih memproses ekspor sebelumnya."
	case errors.Is(err, ErrImageExport):
		return "Gagal membuat file PNG. Silakan coba lagi."
	case errors.Is(err, ErrDocumentExport):
		return "Gagal membuat file PDF. Silakan coba lagi."
	case errors.Is(err, ErrHandoffFailed):
		return "Gagal membuka WhatsApp. Pastikan nomor HP valid dan WhatsApp terinstal."
	}

	return "Terjadi kesalahan. Silakan coba lagi."
}
