// Package coolify installs the Coolify self-hosted platform following the
// Assess → Intervene → Evaluate pattern: check what exists, make the
// changes fail-fast, then verify the service actually came up.
package coolify

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/container"
	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/crypto"
	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/ctl_err"
	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/platform"
	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/shared"
	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/systemd"
	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/telemetry"
	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/templates"
	"github.com/CodeMonkeyCybersecurity/coolifyctl/pkg/verify"
	cerr "github.com/cockroachdb/errors"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// Install runs the full installation flow.
func (ins *Installer) Install() error {
	ctx, span := telemetry.Start(ins.rc.Ctx, "coolify.Install")
	defer span.End()
	// Child operations read rc.Ctx, so they parent under this span.
	ins.rc.Ctx = ctx

	logger := otelzap.Ctx(ins.rc.Ctx)
	logger.Info("Starting Coolify installation",
		zap.String("install_dir", ins.config.InstallDir),
		zap.Int("port", ins.config.Port))

	// The privilege check runs before any mutation.
	if err := platform.RequireRoot(ins.rc); err != nil {
		return err
	}

	if err := verify.Struct(ins.config); err != nil {
		return cerr.Wrap(err, "invalid install configuration")
	}

	// ASSESS
	state := ins.assessInstallation()
	logger.Info("Installation assessment completed",
		zap.Bool("installed", state.Installed),
		zap.Bool("running", state.ServiceRunning),
		zap.Bool("compose_exists", state.ComposeExists),
		zap.Bool("unit_exists", state.UnitExists))

	if state.Installed && !ins.config.ForceReinstall {
		return ctl_err.NewUserError(
			"Coolify is already installed at %s\nUse --force to reinstall (the existing directory is kept as a timestamped backup)",
			ins.config.InstallDir)
	}

	// INTERVENE
	if err := ins.performInstallation(); err != nil {
		return fmt.Errorf("installation failed: %w", err)
	}

	// EVALUATE
	if !ins.config.SkipVerify {
		ins.verifyInstallation()
	}

	logger.Info("Coolify installation completed",
		zap.String("access_url", fmt.Sprintf("http://localhost:%d", ins.config.Port)),
		zap.String("manage_script", ins.config.ManageScript))
	return nil
}

// assessInstallation checks what already exists on the host.
func (ins *Installer) assessInstallation() *InstallState {
	logger := otelzap.Ctx(ins.rc.Ctx)
	state := &InstallState{}

	if _, err := os.Stat(ins.config.InstallDir); err == nil {
		state.DirExists = true
	}
	if _, err := os.Stat(ins.config.ComposeFile); err == nil {
		state.ComposeExists = true
	}
	if _, err := os.Stat(ins.config.UnitPath); err == nil {
		state.UnitExists = true
	}
	if running, err := container.ContainerRunning(ins.rc, ins.config.ContainerName); err == nil {
		state.ServiceRunning = running
	}

	state.Installed = state.ServiceRunning || (state.ComposeExists && state.UnitExists)

	logger.Debug("Assessment complete",
		zap.Bool("dir_exists", state.DirExists),
		zap.Bool("compose_exists", state.ComposeExists),
		zap.Bool("unit_exists", state.UnitExists),
		zap.Bool("service_running", state.ServiceRunning))
	return state
}

// performInstallation executes the install steps in order; any failure
// aborts the rest.
func (ins *Installer) performInstallation() error {
	logger := otelzap.Ctx(ins.rc.Ctx)

	// Step 1: dependencies
	logger.Info("Checking prerequisites")
	if err := container.EnsureDockerInstalled(ins.rc); err != nil {
		return fmt.Errorf("Docker is required for Coolify: %w", err)
	}
	if err := container.EnsureComposeInstalled(ins.rc); err != nil {
		return fmt.Errorf("Docker Compose is required for Coolify: %w", err)
	}

	// Step 2: install directory, renaming any previous install aside
	if backup, err := BackupExistingDir(ins.rc, ins.config.InstallDir); err != nil {
		return err
	} else if backup != "" {
		logger.Info("Previous install preserved", zap.String("backup", backup))
	}
	logger.Info("Creating installation directory", zap.String("dir", ins.config.InstallDir))
	if err := os.MkdirAll(ins.config.InstallDir, shared.DirPermStandard); err != nil {
		return cerr.Wrap(err, "create installation directory")
	}

	// Step 3: fresh secrets
	if err := ins.generateSecrets(); err != nil {
		return err
	}

	// Step 4: compose manifest
	logger.Info("Creating Docker Compose configuration", zap.String("file", ins.config.ComposeFile))
	if err := ins.writeComposeFile(); err != nil {
		return err
	}

	// Step 5: docker network
	if err := container.EnsureNetwork(ins.rc, ins.config.NetworkName); err != nil {
		return err
	}

	// Step 6: management wrapper script
	logger.Info("Creating management script", zap.String("file", ins.config.ManageScript))
	if err := ins.writeManageScript(); err != nil {
		return err
	}

	// Step 7: systemd unit, enabled and started
	logger.Info("Registering systemd service", zap.String("unit", ins.config.UnitPath))
	if err := ins.registerService(); err != nil {
		return err
	}

	return nil
}

// generateSecrets draws fresh APP_ID and SECRET_KEY values.
func (ins *Installer) generateSecrets() error {
	logger := otelzap.Ctx(ins.rc.Ctx)

	appID, err := crypto.GenerateAppID()
	if err != nil {
		return cerr.Wrap(err, "generate APP_ID")
	}
	secretKey, err := crypto.GenerateSecretKey()
	if err != nil {
		return cerr.Wrap(err, "generate SECRET_KEY")
	}

	ins.config.appID = appID
	ins.config.secretKey = secretKey

	logger.Info("Generated instance secrets",
		zap.String("app_id", crypto.Redact(appID)),
		zap.String("secret_key", crypto.Redact(secretKey)))
	return nil
}

// writeComposeFile renders, validates, and writes the compose manifest.
func (ins *Installer) writeComposeFile() error {
	rendered, err := RenderCompose(ins.rc.Log, ins.config)
	if err != nil {
		return err
	}

	if _, err := container.ValidateManifest([]byte(rendered),
		LegacyAppIDPlaceholder, LegacySecretKeyPlaceholder); err != nil {
		return cerr.Wrap(err, "generated compose manifest failed validation")
	}

	if err := os.WriteFile(ins.config.ComposeFile, []byte(rendered), shared.FilePermSecret); err != nil {
		return cerr.Wrap(err, "write compose manifest")
	}
	return nil
}

// RenderCompose renders the compose manifest for cfg. Secrets must have
// been generated (or set for tests via SetSecrets).
func RenderCompose(log *zap.Logger, cfg *InstallConfig) (string, error) {
	renderer := templates.NewRenderer(log)
	return renderer.Render(nil, templates.CoolifyComposeTemplate, map[string]interface{}{
		"Image":         cfg.Image,
		"ContainerName": cfg.ContainerName,
		"HostPort":      cfg.Port,
		"AppID":         cfg.appID,
		"SecretKey":     cfg.secretKey,
		"NetworkName":   cfg.NetworkName,
	})
}

// SetSecrets injects known secret values; exported for tests only.
func (c *InstallConfig) SetSecrets(appID, secretKey string) {
	c.appID = appID
	c.secretKey = secretKey
}

// writeManageScript renders and writes the standalone wrapper, marked
// executable.
func (ins *Installer) writeManageScript() error {
	renderer := templates.NewRenderer(ins.rc.Log)
	rendered, err := renderer.Render(ins.rc.Ctx, templates.CoolifyManageScriptTemplate, map[string]interface{}{
		"ComposeFile": ins.config.ComposeFile,
		"ServiceName": ins.config.ServiceName,
		"ComposeBin":  ResolveComposeBin(),
	})
	if err != nil {
		return err
	}

	if err := os.WriteFile(ins.config.ManageScript, []byte(rendered), shared.FilePermExec); err != nil {
		return cerr.Wrap(err, "write management script")
	}
	return nil
}

// registerService writes the unit file, reloads systemd, and enables and
// starts the service.
func (ins *Installer) registerService() error {
	renderer := templates.NewRenderer(ins.rc.Log)
	rendered, err := renderer.Render(ins.rc.Ctx, templates.CoolifyUnitTemplate, map[string]interface{}{
		"InstallDir":  ins.config.InstallDir,
		"ComposeFile": ins.config.ComposeFile,
		"ComposeBin":  ResolveComposeBin(),
	})
	if err != nil {
		return err
	}

	if err := systemd.WriteUnit(ins.rc, ins.config.UnitPath, rendered); err != nil {
		return err
	}
	return systemd.EnableAndStart(ins.rc, ins.config.ServiceName)
}

// verifyInstallation checks the unit state and container after start.
// Slow image pulls mean the stack may legitimately still be coming up, so
// findings are logged as warnings rather than failing the install.
func (ins *Installer) verifyInstallation() {
	logger := otelzap.Ctx(ins.rc.Ctx)
	logger.Info("Verifying installation")

	if state, err := systemd.IsActive(ins.rc, ins.config.ServiceName); err != nil {
		logger.Warn("Could not query service state", zap.Error(err))
	} else if state != "active" {
		logger.Warn("Service is not active yet; it may still be pulling images",
			zap.String("state", state),
			zap.String("hint", "check progress with: coolifyctl service status"))
	} else {
		logger.Info("Service is active")
	}

	if running, err := container.ContainerRunning(ins.rc, ins.config.ContainerName); err != nil {
		logger.Warn("Could not query container state", zap.Error(err))
	} else if !running {
		logger.Warn("Coolify container is not running yet",
			zap.String("container", ins.config.ContainerName))
	} else {
		logger.Info("Coolify container is running",
			zap.String("container", ins.config.ContainerName))
	}
}

// ResolveComposeBin returns the absolute compose invocation used inside
// generated files (systemd ExecStart requires an absolute path).
func ResolveComposeBin() string {
	if path, err := exec.LookPath("docker"); err == nil {
		return path + " compose"
	}
	if path, err := exec.LookPath("docker-compose"); err == nil {
		return path
	}
	return shared.ComposeBinaryPath
}
