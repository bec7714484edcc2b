package mailer

import "fmt"

// Subjects for the two notification kinds the system sends.
const (
	SubjectPasswordReset = "Reset de senha"
	SubjectRegistration  = "Nova inscrição"
)

const emailShell = `<!doctype html>
<html lang="pt-br">
<head>
    <meta content="text/html; charset=utf-8" http-equiv="Content-Type" />
    <title>%s</title>
</head>
<body style="margin: 0px; background-color: #f2f3f8; font-family: 'Open Sans', sans-serif;">
    <table width="100%%" bgcolor="#f2f3f8" cellspacing="0" border="0" cellpadding="0">
        <tr>
            <td>
                <table style="max-width:670px; margin:40px auto; background:#fff; border-radius:3px; text-align:center;"
                    width="95%%" border="0" align="center" cellpadding="0" cellspacing="0">
                    <tr>
                        <td style="padding:40px 35px;">
                            <h1 style="color:#1e1e2d; font-weight:500; margin:0; font-size:32px;">%s</h1>
                            <span style="display:inline-block; margin:29px 0 26px; border-bottom:1px solid #cecece; width:100px;"></span>
                            %s
                        </td>
                    </tr>
                </table>
            </td>
        </tr>
    </table>
</body>
</html>`

// PasswordResetBody renders the OTP email sent by the password reset flow
func PasswordResetBody(otpCode string) string {
	content := fmt.Sprintf(`<p style="color:#455056; font-size:15px; line-height:24px; margin:0;">Segue o código de verificação para seguir com o processo de alteração de senha.<br/>Insira o código abaixo no navegador para continuar:</p>
<span style="background:#1f3566; font-weight:500; margin-top:35px; color:#fff; font-size:14px; padding:10px 24px; display:inline-block; border-radius:50px;">&nbsp;&nbsp;%s&nbsp;&nbsp;</span>
<p style="color:#455056; font-size:15px; line-height:24px; margin-top:35px; font-style:italic;">Caso você não tenha solicitado, basta ignorar.</p>`, otpCode)
	return fmt.Sprintf(emailShell, "Reset de senha", "Código de verificação", content)
}

// RegistrationBody renders the submission summary email. details is the
// pre-rendered HTML roster listing.
func RegistrationBody(details string) string {
	content := fmt.Sprintf(`<p style="color:#455056; font-size:15px; line-height:24px; margin:0;">Verifique os dados abaixo para confirmar a aprovação da participação da organization:</p>
<div style="font-weight:500; margin-top:35px; color:#000; font-size:14px; padding:10px 0; text-align:left;">
%s
</div>
<p style="color:#455056; font-size:15px; line-height:24px; margin:35px 0 0 0; font-style:italic;">Caso encontre algum problema, entre em contato com o desenvolvedor.</p>`, details)
	return fmt.Sprintf(emailShell, "Nova inscrição", "Você recebeu uma nova inscrição!", content)
}
